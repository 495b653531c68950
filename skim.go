// Package skim provides a naive, frequency-free text summarizer. It ranks
// sentences by their pairwise lexical overlap with every other sentence in
// a text and assembles a summary from the best sentence of each paragraph.
//
// This package contains the pure ranking core plus domain types and
// interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., fs/, goquery/, htmltomarkdown/).
package skim
