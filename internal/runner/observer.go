package runner

// Diagnostic describes a question that landed in the incorrect bucket.
type Diagnostic struct {
	Subject   string
	Num       int
	Expected  string
	Predicted string
	Response  string
}

// Observer receives per-question events while a run is graded.
type Observer interface {
	// OnGraded is called for every scored question, in input order.
	OnGraded(record GradedRecord)
	// OnIncorrect is called for every question in the incorrect bucket.
	OnIncorrect(diagnostic Diagnostic)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) OnGraded(GradedRecord)  {}
func (NopObserver) OnIncorrect(Diagnostic) {}

func observerOrNop(observer Observer) Observer {
	if observer == nil {
		return NopObserver{}
	}
	return observer
}

func diagnosticFor(record GradedRecord) Diagnostic {
	return Diagnostic{
		Subject:   string(record.Subject),
		Num:       record.Num,
		Expected:  record.Expected,
		Predicted: record.Predicted.String(),
		Response:  record.Response,
	}
}
