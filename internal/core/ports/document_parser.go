package ports

import "go.trai.ch/dataloader/internal/core/domain"

// DocumentParser turns document text into a value tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=document_parser.go -destination=mocks/mock_document_parser.go -package=mocks
type DocumentParser interface {
	// Parse detects the format of text and decodes it. Failures are *domain.ParseError.
	Parse(text, source string, showContent bool) (*domain.Document, error)

	// ParseNode re-parses a tracked string scalar and keeps its position on the result root.
	ParseNode(node *domain.Node, showContent bool) (*domain.Document, error)
}
