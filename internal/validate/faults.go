package validate

import "strings"

type fault struct {
	name        string
	description string
}

// Faults collects validation failures so that independent checks can
// be reported together as a single combined message.
type Faults struct {
	faults []fault
}

func (this *Faults) Fail(name, description string) {
	this.faults = append(this.faults, fault{
		name:        name,
		description: description,
	})
}

func (this *Faults) FailWhen(condition bool, name, description string) {
	if condition {
		this.Fail(name, description)
	}
}

func (this *Faults) Count() int {
	return len(this.faults)
}

// Report renders all collected faults as one message with one clause
// per fault, e.g. "invalid username: too short, invalid age: too low".
func (this *Faults) Report() string {
	if len(this.faults) == 0 {
		return ""
	}

	var b strings.Builder
	for i, fault := range this.faults {
		if i > 0 {
			_, _ = b.WriteString(", ")
		}
		_, _ = b.WriteString(fault.name)
		_, _ = b.WriteString(": ")
		_, _ = b.WriteString(fault.description)
	}
	return b.String()
}

func (this *Faults) ToError() error {
	if this.Count() == 0 {
		return nil
	}
	return &Error{report: this.Report()}
}

type Error struct {
	report string
}

func (this *Error) Error() string {
	return this.report
}
