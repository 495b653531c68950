// Package digest provides multi-document summarization orchestration.
// It coordinates document loading, HTML extraction, concurrent
// summarization, and cross-document repeated-sentence suppression.
package digest
