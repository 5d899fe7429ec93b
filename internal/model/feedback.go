package model

// Feedback is the grading contract returned to clients and stored with every
// response record. All list fields are non-nil so they serialize as [].
type Feedback struct {
	Score           int      `json:"score"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Feedback        string   `json:"feedback"`
	Suggestions     []string `json:"suggestions"`
	KeywordsCovered []string `json:"keywordsCovered"`
}

// Normalize replaces nil lists with empty ones.
func (f *Feedback) Normalize() {
	if f.Strengths == nil {
		f.Strengths = []string{}
	}
	if f.Weaknesses == nil {
		f.Weaknesses = []string{}
	}
	if f.Suggestions == nil {
		f.Suggestions = []string{}
	}
	if f.KeywordsCovered == nil {
		f.KeywordsCovered = []string{}
	}
}
