package pet

// Profile is the session-scoped profile view. It is written through to the
// user table by the profile service but otherwise lives in the state store.
type Profile struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Bio              string `json:"bio"`
	GoogleRegistered int    `json:"google_registered"`
	Level            int    `json:"level"`
	LearningProgress string `json:"learning_progress"`
}

func DefaultProfile() Profile {
	return Profile{
		Level:            1,
		LearningProgress: "{}",
	}
}
