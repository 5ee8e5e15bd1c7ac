package domain

// WorkoutType is a user-visible workout definition a record can reference.
type WorkoutType struct {
	ID        string
	Name      string
	Icon      string
	Color     string
	Exercises []Exercise
}

// Exercise is one entry in a workout type's ordered exercise list.
// Reps is free text ("8-12", "to failure").
type Exercise struct {
	ID   string
	Name string
	Sets int
	Reps string
}
