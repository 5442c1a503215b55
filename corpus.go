// Package corpus builds a static Qur'an and Hadith corpus for the truth
// dashboard. It pulls verses and hadiths from upstream REST APIs, normalizes
// them into a common Item shape, and writes a card feed plus a full-text
// search index as JSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, yaml/, goquery/).
package corpus
