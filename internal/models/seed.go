package models

// DefaultActivities returns the roster the database is seeded with when the
// activities collection is empty.
func DefaultActivities() []Activity {
	return []Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Practice basketball skills and compete in interscholastic games",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "liam@mergington.edu"},
		},
		{
			Name:            "Track and Field",
			Description:     "Train for various running, jumping, and throwing events",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"ava@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Art Club",
			Description:     "Explore various art mediums including painting, drawing, and sculpture",
			Schedule:        "Wednesdays, 3:00 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"mia@mergington.edu", "charlotte@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Develop acting skills and participate in theater productions",
			Schedule:        "Thursdays, 3:30 PM - 6:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"ethan@mergington.edu", "isabella@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Develop critical thinking and public speaking through competitive debates",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"lucas@mergington.edu", "amelia@mergington.edu"},
		},
		{
			Name:            "Science Olympiad",
			Description:     "Compete in science competitions and conduct experiments",
			Schedule:        "Tuesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"mason@mergington.edu", "harper@mergington.edu"},
		},
	}
}
