package model

// Positions lists the selectable positions in form order.
var Positions = []string{
	"Software Engineer",
	"Senior Software Engineer",
	"Product Manager",
	"UI/UX Designer",
	"Data Analyst",
	"Marketing Specialist",
	"Sales Representative",
	"HR Coordinator",
	"Financial Analyst",
	"Operations Manager",
}

// Departments lists the selectable departments in form order.
var Departments = []string{
	"Engineering",
	"Marketing",
	"Sales",
	"Human Resources",
	"Finance",
	"Operations",
	"Customer Service",
	"Product Management",
}

func IsKnownPosition(p string) bool {
	return contains(Positions, p)
}

func IsKnownDepartment(d string) bool {
	return contains(Departments, d)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
