package meli

// Journal receives the human-readable progress lines of a sync run.
type Journal interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopJournal struct{}

func (nopJournal) Infof(string, ...any)  {}
func (nopJournal) Warnf(string, ...any)  {}
func (nopJournal) Errorf(string, ...any) {}
