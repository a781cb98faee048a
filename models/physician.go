package models

// Physician is an entry in the clinic's fixed roster. The roster is the
// source of truth for the primaryPhysician field on appointments.
type Physician struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

var Physicians = []Physician{
	{Name: "John Green", Image: "/assets/images/dr-green.png"},
	{Name: "Leila Cameron", Image: "/assets/images/dr-cameron.png"},
	{Name: "David Livingston", Image: "/assets/images/dr-livingston.png"},
	{Name: "Evan Peter", Image: "/assets/images/dr-peter.png"},
	{Name: "Jane Powell", Image: "/assets/images/dr-powell.png"},
	{Name: "Alex Ramirez", Image: "/assets/images/dr-ramirez.png"},
	{Name: "Jasmine Lee", Image: "/assets/images/dr-lee.png"},
	{Name: "Alyana Cruz", Image: "/assets/images/dr-cruz.png"},
	{Name: "Hardik Sharma", Image: "/assets/images/dr-sharma.png"},
}

// KnownPhysician reports whether name is on the roster.
func KnownPhysician(name string) bool {
	for _, p := range Physicians {
		if p.Name == name {
			return true
		}
	}
	return false
}
