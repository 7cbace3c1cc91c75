package appointment

import "github.com/akashmongoosetech/shashank-backend/internal/model"

// transitions is the expected lifecycle. pending and confirmed can be
// cancelled; confirmed appointments end as completed or no-show. completed,
// cancelled and no-show are terminal.
var transitions = map[model.AppointmentStatus][]model.AppointmentStatus{
	model.AppointmentStatusPending: {
		model.AppointmentStatusConfirmed,
		model.AppointmentStatusCancelled,
	},
	model.AppointmentStatusConfirmed: {
		model.AppointmentStatusCompleted,
		model.AppointmentStatusCancelled,
		model.AppointmentStatusNoShow,
	},
}

// allowedTransition reports whether from -> to is part of the expected
// lifecycle. Writing the current status again is always allowed.
func allowedTransition(from, to model.AppointmentStatus) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
