package xp

import (
	"math"
	"time"
)

// NextChatSaturation computes the chat saturation counter for an accrual
// event at now, given the stored counter and the previous event time.
// Messages within the spam window increase density; otherwise one step is
// recovered per full idle hour. A zero last time means the user has never
// chatted and starts fully recovered.
func NextChatSaturation(count int, last, now time.Time) int {
	if last.IsZero() {
		return 0
	}

	elapsed := now.Sub(last)
	if elapsed < ChatSpamWindow {
		return count + 1
	}

	count -= int(elapsed / RecoveryPeriod)
	if count < 0 {
		count = 0
	}
	return count
}

// ChatReduction returns the diminishing-returns multiplier for the given
// chat saturation counter, floored at ChatReductionFloor.
func ChatReduction(count int) float64 {
	r := math.Pow(ChatDecayBase, float64(count))
	if r < ChatReductionFloor {
		return ChatReductionFloor
	}
	return r
}

// NextVoiceMinutes computes the voice minute counter for a per-minute tick
// at now. Five minutes of density are recovered per full idle hour, the
// current minute is added, and the result is capped at VoiceMinuteCap.
func NextVoiceMinutes(count int, last, now time.Time) int {
	if last.IsZero() {
		count = 0
	} else if elapsed := now.Sub(last); elapsed > 0 {
		count -= int(elapsed/RecoveryPeriod) * VoiceRecoveryPerHour
	}
	if count < 0 {
		count = 0
	}

	count++
	if count > VoiceMinuteCap {
		count = VoiceMinuteCap
	}
	return count
}

// RecoveredVoiceMinutes returns the voice minute counter as it stands at
// now, after idle recovery but without adding a new minute. Used by the
// penalty diagnostics, not by accrual itself.
func RecoveredVoiceMinutes(count int, last, now time.Time) int {
	if last.IsZero() {
		return 0
	}
	if elapsed := now.Sub(last); elapsed > 0 {
		count -= int(elapsed/RecoveryPeriod) * VoiceRecoveryPerHour
	}
	if count < 0 {
		return 0
	}
	return count
}

// VoiceReduction returns the diminishing-returns multiplier for the given
// voice minute counter: 50% per full five-minute window, floored at
// VoiceReductionFloor.
func VoiceReduction(minutes int) float64 {
	windows := minutes / VoiceWindowMinutes
	r := math.Pow(VoiceDecayBase, float64(windows))
	if r < VoiceReductionFloor {
		return VoiceReductionFloor
	}
	return r
}

// TagMultiplier maps the server tag status to its XP multiplier.
func TagMultiplier(tagActive bool) float64 {
	if tagActive {
		return ServerTagMultiplier
	}
	return BaseMultiplier
}

// BonusDate formats the calendar date gating the daily bonus.
func BonusDate(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(BonusDateLayout)
}

// round4 rounds a reported XP value to four decimal places.
func round4(v float64) float64 {
	return math.Round(v*resultPrecision) / resultPrecision
}
