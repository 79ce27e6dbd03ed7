package journal

import "github.com/justyntemme/dragdrop"

// FromDrop builds a drop entry from a finished drop's record and the
// originating source's effect token. The single-type payload shorthand
// carries no type name, so only its length is recorded.
func FromDrop(effectToken string, rec dragdrop.DropRecord) Entry {
	e := Entry{
		Outcome:     OutcomeDrop,
		EffectToken: effectToken,
	}
	switch data := rec.Data.(type) {
	case string:
		e.PayloadLen = len(data)
	case map[string]string:
		for typ, value := range data {
			e.Types = append(e.Types, typ)
			e.PayloadLen += len(value)
		}
	}
	return e
}

// FromCancel builds a cancellation entry.
func FromCancel(effectToken string) Entry {
	return Entry{
		Outcome:     OutcomeCancel,
		EffectToken: effectToken,
	}
}
