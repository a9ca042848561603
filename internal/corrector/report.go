package corrector

// Change records how one unknown word occurrence was resolved.
type Change struct {
	Index       int      `json:"index"` // token position in the input
	Original    string   `json:"original"`
	Replacement string   `json:"replacement,omitempty"`
	Decision    string   `json:"decision"`
	Suggestions []string `json:"suggestions"`
	Attempts    int      `json:"attempts"`
}

// Report summarises one correction pass.
type Report struct {
	Tokens   int      `json:"tokens"`
	Unknown  int      `json:"unknown"`
	Added    int      `json:"added"`
	Kept     int      `json:"kept"`
	Replaced int      `json:"replaced"`
	Rejected int      `json:"rejected"` // invalid decisions that were asked again
	Changes  []Change `json:"changes"`
}

func (r *Report) record(c Change) {
	r.Unknown++
	r.Rejected += c.Attempts - 1
	switch c.Decision {
	case KeepAndAdd.String():
		r.Added++
	case KeepOnly.String():
		r.Kept++
	case Replace.String():
		r.Replaced++
	}
	r.Changes = append(r.Changes, c)
}
