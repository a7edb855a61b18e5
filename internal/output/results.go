package output

import (
	"strconv"
	"strings"

	"github.com/zoobzio/haxxor"
)

// HashResult is the output of encrypt.
type HashResult struct {
	Module string `json:"module" yaml:"module" xml:"module" msgpack:"module" bson:"module"`
	Hash   string `json:"hash" yaml:"hash" xml:"hash" msgpack:"hash" bson:"hash"`
}

func (r HashResult) Text() string { return r.Hash }

// PlainResult is the output of decrypt.
type PlainResult struct {
	Module    string `json:"module" yaml:"module" xml:"module" msgpack:"module" bson:"module"`
	Plaintext string `json:"plaintext" yaml:"plaintext" xml:"plaintext" msgpack:"plaintext" bson:"plaintext"`
}

func (r PlainResult) Text() string { return r.Plaintext }

// ValidateResult is the output of validate.
type ValidateResult struct {
	Module string `json:"module" yaml:"module" xml:"module" msgpack:"module" bson:"module"`
	Valid  bool   `json:"valid" yaml:"valid" xml:"valid" msgpack:"valid" bson:"valid"`
}

func (r ValidateResult) Text() string { return strconv.FormatBool(r.Valid) }

// AttemptResult is one cycle entry. Error is empty on success.
type AttemptResult struct {
	Module    string `json:"module" yaml:"module" xml:"module" msgpack:"module" bson:"module"`
	Plaintext string `json:"plaintext" yaml:"plaintext" xml:"plaintext" msgpack:"plaintext" bson:"plaintext"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty" xml:"error,omitempty" msgpack:"error,omitempty" bson:"error,omitempty"`
}

// CycleResult is the output of cycle.
type CycleResult struct {
	Attempts []AttemptResult `json:"attempts" yaml:"attempts" xml:"attempt" msgpack:"attempts" bson:"attempts"`
}

// NewCycleResult converts registry attempts.
func NewCycleResult(attempts haxxor.Attempts) CycleResult {
	out := CycleResult{Attempts: make([]AttemptResult, len(attempts))}
	for i, at := range attempts {
		out.Attempts[i] = AttemptResult{Module: at.Algorithm.String(), Plaintext: at.Plaintext}
		if at.Err != nil {
			out.Attempts[i].Error = at.Err.Error()
		}
	}
	return out
}

// Text renders "<Algorithm>:\t<plaintext>" per entry between blank lines.
func (r CycleResult) Text() string {
	var b strings.Builder
	b.WriteString("\n")
	for _, at := range r.Attempts {
		b.WriteString(at.Module + ":\t" + at.Plaintext + "\n")
	}
	return b.String()
}

// ModuleInfo describes one registered module.
type ModuleInfo struct {
	Name       string `json:"name" yaml:"name" xml:"name" msgpack:"name" bson:"name"`
	Reversible bool   `json:"reversible" yaml:"reversible" xml:"reversible" msgpack:"reversible" bson:"reversible"`
}

// ModuleList is the output of list.
type ModuleList struct {
	Modules []ModuleInfo `json:"modules" yaml:"modules" xml:"module" msgpack:"modules" bson:"modules"`
}

// NewModuleList describes modules in order.
func NewModuleList(modules []haxxor.Module) ModuleList {
	out := ModuleList{Modules: make([]ModuleInfo, len(modules))}
	for i, m := range modules {
		out.Modules[i] = ModuleInfo{Name: m.Algorithm().String(), Reversible: m.Reversible()}
	}
	return out
}

func (r ModuleList) Text() string {
	var b strings.Builder
	b.WriteString("\nModules List\n\n")
	for _, m := range r.Modules {
		b.WriteString("   " + m.Name + "\n")
	}
	return b.String()
}

// VersionResult is the output of version.
type VersionResult struct {
	Name    string `json:"name" yaml:"name" xml:"name" msgpack:"name" bson:"name"`
	Version string `json:"version" yaml:"version" xml:"version" msgpack:"version" bson:"version"`
}

func (r VersionResult) Text() string { return r.Name + ", " + r.Version }
