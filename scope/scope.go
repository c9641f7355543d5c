package scope

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Kind identifies the concurrency scope a slot replicates: one of the
// concurrent lumi, run or process-block scopes, or the single whole-job scope.
type Kind int

const (
	KindLumi Kind = iota
	KindRun
	KindProcessBlock
	KindJob
)

func (k Kind) String() string {
	switch k {
	case KindLumi:
		return "lumi"
	case KindRun:
		return "run"
	case KindProcessBlock:
		return "process_block"
	case KindJob:
		return "job"
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// Counts holds the number of concurrent slots per replicated kind. The job
// slot is not counted here, there is always exactly one.
type Counts struct {
	Lumis         int
	Runs          int
	ProcessBlocks int
}

// Total returns the number of slots a scheduler must allocate, including the
// single job slot.
func (c Counts) Total() int {
	return c.Lumis + c.Runs + c.ProcessBlocks + 1
}

// Refs returns one tagged reference per slot, in allocation order: lumis,
// runs, process blocks, then the job slot last.
func (c Counts) Refs() []Ref {
	refs := make([]Ref, 0, c.Total())
	for i := 0; i < c.Lumis; i++ {
		refs = append(refs, Ref{Kind: KindLumi, Index: i})
	}
	for i := 0; i < c.Runs; i++ {
		refs = append(refs, Ref{Kind: KindRun, Index: i})
	}
	for i := 0; i < c.ProcessBlocks; i++ {
		refs = append(refs, Ref{Kind: KindProcessBlock, Index: i})
	}
	refs = append(refs, Ref{Kind: KindJob, Index: 0})
	return refs
}

// Ref identifies one slot by kind and index within that kind. The job slot is
// found by kind, never by arithmetic over the flat slot array.
type Ref struct {
	Kind  Kind
	Index int
}

func (r Ref) IsJob() bool { return r.Kind == KindJob }

func (r Ref) String() string {
	return fmt.Sprintf("%s:%d", r.Kind, r.Index)
}

func (r Ref) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("kind", r.Kind.String())
	enc.AddInt("index", r.Index)
	return nil
}
