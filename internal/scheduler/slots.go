package scheduler

import "math/rand"

// Slot is a minute-resolution position within a day.
type Slot struct {
	Hour   int
	Minute int
}

// Window bounds slot allocation for one action type: the hours of day the
// slots may fall in and the spacing between consecutive slots.
type Window struct {
	StartHour     int
	EndHour       int
	MinGapMinutes int
	MaxGapMinutes int
}

const (
	// padMinJitter/padMaxJitter bound the forward nudge used when the
	// window runs out before the requested count is reached.
	padMinJitter = 7
	padMaxJitter = 20

	// seedSpreadMinutes is how far past the window start the first
	// slot may land.
	seedSpreadMinutes = 30
)

// AllocateSlots produces count ordered slots inside the window, spaced by
// uniform random gaps so the sequence reads as human activity rather than
// a fixed-interval schedule. When the window is exhausted before count is
// reached, the remainder is padded by jittering forward from the last slot
// and clamping at the window end, so duplicate boundary slots are possible
// under heavy padding.
func AllocateSlots(rng *rand.Rand, count int, w Window) []Slot {
	if count <= 0 {
		return nil
	}

	startMin := w.StartHour * 60
	endMin := w.EndHour * 60

	var slots []Slot
	offset := startMin + rng.Intn(seedSpreadMinutes+1)
	for len(slots) < count && offset <= endMin {
		slots = append(slots, minuteSlot(offset))
		offset += w.MinGapMinutes + rng.Intn(w.MaxGapMinutes-w.MinGapMinutes+1)
	}

	// Pad from the last slot; without at least one slot there is
	// nothing to jitter from and the result stays short.
	for len(slots) > 0 && len(slots) < count {
		last := slots[len(slots)-1]
		next := last.Hour*60 + last.Minute + padMinJitter + rng.Intn(padMaxJitter-padMinJitter+1)
		if next > endMin {
			next = endMin
		}
		slots = append(slots, minuteSlot(next))
	}

	if len(slots) > count {
		slots = slots[:count]
	}
	return slots
}

func minuteSlot(offset int) Slot {
	return Slot{Hour: offset / 60, Minute: offset % 60}
}
