// Package ticket renders cards into the two text artifacts of the ticket
// pipeline: the plain prompt handed to the summarizer and the Jira-style
// requirements document handed back to the user.
//
// Both renderers are pure and deterministic. User text is inserted verbatim;
// content that itself contains document markers such as "----" or
// "*Card ID:*" produces a document whose sections no longer parse cleanly.
package ticket
