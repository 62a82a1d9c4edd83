package ast

import "fmt"

// Pos is a source span in the unit this tree was parsed from. Lines
// and columns are zero-based, end exclusive, as delivered by the host
// parser.
type Pos struct {
	StartLine int `json:"startLine"`
	StartCol  int `json:"startCol"`
	EndLine   int `json:"endLine"`
	EndCol    int `json:"endCol"`
}

func (p Pos) IsZero() bool {
	return p == Pos{}
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", p.StartLine, p.StartCol, p.EndLine, p.EndCol)
}
