package schema

// LineSnapshot is a read-only copy of one buffer line.
type LineSnapshot struct {
	Seq     uint64   `json:"seq"`
	Content string   `json:"content"`
	Type    LineType `json:"type"`
	Color   string   `json:"color,omitempty"`
	Wrapped []string `json:"wrapped"`
}

// InputSnapshot describes the input line.
type InputSnapshot struct {
	Prompt string    `json:"prompt"`
	Text   string    `json:"text"`
	Cursor int       `json:"cursor"`
	Mode   InputMode `json:"mode"`
}

// ViewSnapshot is everything a renderer needs to paint one frame.
type ViewSnapshot struct {
	Seq          uint64         `json:"seq"`
	Lines        []LineSnapshot `json:"lines"`
	Input        InputSnapshot  `json:"input"`
	Width        int            `json:"width"`
	Height       int            `json:"height"`
	ScrollOffset int            `json:"scroll_offset"`
	TotalVisual  int            `json:"total_visual"`
	AtBottom     bool           `json:"at_bottom"`
	Booting      bool           `json:"booting"`
	Closed       bool           `json:"closed"`
}

// VisualRows flattens the wrapped lines of the snapshot.
func (v ViewSnapshot) VisualRows() []string {
	var rows []string
	for _, line := range v.Lines {
		rows = append(rows, line.Wrapped...)
	}
	return rows
}
