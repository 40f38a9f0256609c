package entry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/voicing"
)

// List is the ordered chord list a host keeps as its state. Every method
// returns a new List and leaves the receiver untouched.
type List []Entry

// Resolved pairs an entry with its voicing or the reason it has none.
type Resolved struct {
	Entry   Entry
	Voicing voicing.Voicing
	Err     error
}

func (l List) clone() List {
	res := make(List, len(l))
	copy(res, l)
	return res
}

// Add appends a symbolic chord. Symbols that do not parse are refused.
func (l List) Add(symbol string) (List, error) {
	symbol = strings.TrimSpace(symbol)
	if _, err := chord.Parse(symbol); err != nil {
		return l, err
	}
	return append(l.clone(), NewSymbolic(symbol)), nil
}

func (l List) AddCustom(pitches []int, root *int) List {
	return append(l.clone(), NewCustom(pitches, root))
}

// AddFromInput adds every comma separated symbol of input. Bad symbols are
// reported and skipped; the rest are still added.
func (l List) AddFromInput(input string) (List, []error) {
	res := l.clone()
	var errs []error
	for _, item := range strings.Split(input, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		next, err := res.Add(item)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		res = next
	}
	return res, errs
}

func (l List) index(id uuid.UUID) (int, error) {
	for i, e := range l {
		if e.EntryID() == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

func (l List) Get(id uuid.UUID) (Entry, error) {
	i, err := l.index(id)
	if err != nil {
		return nil, err
	}
	return l[i], nil
}

func (l List) Remove(id uuid.UUID) (List, error) {
	i, err := l.index(id)
	if err != nil {
		return l, err
	}
	res := make(List, 0, len(l)-1)
	res = append(res, l[:i]...)
	return append(res, l[i+1:]...), nil
}

// SetInversion picks an inversion for the entry and drops any octave shift.
func (l List) SetInversion(id uuid.UUID, inversion int) (List, error) {
	i, err := l.index(id)
	if err != nil {
		return l, err
	}
	if inversion < 0 {
		return l, fmt.Errorf("%w: %d", voicing.ErrNegativeInversion, inversion)
	}

	res := l.clone()
	switch e := res[i].(type) {
	case Symbolic:
		e.Inversion = inversion
		e.Octave = false
		res[i] = e
	case Custom:
		e.Inversion = inversion
		res[i] = e
	}
	return res, nil
}

// SetOctave raises a symbolic entry by an octave in root position.
func (l List) SetOctave(id uuid.UUID) (List, error) {
	i, err := l.index(id)
	if err != nil {
		return l, err
	}

	res := l.clone()
	if e, ok := res[i].(Symbolic); ok {
		e.Octave = true
		e.Inversion = 0
		res[i] = e
	}
	return res, nil
}

// Transpose shifts every entry by semitones.
func (l List) Transpose(semitones int) List {
	res := make(List, len(l))
	for i, e := range l {
		res[i] = Transpose(e, semitones)
	}
	return res
}

func (l List) Clear() List {
	return List{}
}

// Resolve derives every entry's voicing concurrently. Results keep the
// list order.
func (l List) Resolve() []Resolved {
	res := make([]Resolved, len(l))
	var wg sync.WaitGroup
	for i, e := range l {
		wg.Add(1)
		go func(i int, e Entry) {
			defer wg.Done()
			v, err := Resolve(e)
			res[i] = Resolved{Entry: e, Voicing: v, Err: err}
		}(i, e)
	}
	wg.Wait()
	return res
}
