package setup

// Progress receives run events as they happen
type Progress interface {
	Phase(name string)
	Step(result StepResult)
	Warn(message string)
}

type nopProgress struct{}

func (nopProgress) Phase(string) {}

func (nopProgress) Step(StepResult) {}

func (nopProgress) Warn(string) {}
