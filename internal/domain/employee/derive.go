package employee

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const dateLayout = "2006-01-02"

// DefaultRetirementAge is the statutory default applied when a record
// does not carry one.
const DefaultRetirementAge = 63

// RetirementYear derives the retirement year from a YYYY-MM-DD date of
// birth. Returns 0 for unparseable input.
func RetirementYear(dateOfBirth string, retirementAge int) int {
	dob, err := time.Parse(dateLayout, dateOfBirth)
	if err != nil {
		return 0
	}
	return dob.Year() + retirementAge
}

// RetirementDate derives the retirement date, the birthday in the
// retirement year. Returns "" for unparseable input.
func RetirementDate(dateOfBirth string, retirementAge int) string {
	dob, err := time.Parse(dateLayout, dateOfBirth)
	if err != nil {
		return ""
	}
	return dob.AddDate(retirementAge, 0, 0).Format(dateLayout)
}

// ApplyDerived recomputes the system-owned fields from their inputs.
// Called on every create and save so the derived values can never
// drift from dateOfBirth and retirementAge, whatever the caller sent.
func ApplyDerived(emp *Employee) {
	if emp.RetirementAge == 0 {
		emp.RetirementAge = DefaultRetirementAge
	}
	emp.RetirementYear = RetirementYear(emp.DateOfBirth, emp.RetirementAge)
	emp.RetirementDate = RetirementDate(emp.DateOfBirth, emp.RetirementAge)
}

// GenerateEmployeeCode produces a human-facing code in the form
// EMP-YYYY-XXXX, retrying until it does not collide with the roster.
func GenerateEmployeeCode(existing []Employee) string {
	taken := make(map[string]bool, len(existing))
	for _, emp := range existing {
		taken[emp.EmployeeID] = true
	}

	year := time.Now().Year()
	for {
		code := fmt.Sprintf("EMP-%d-%04d", year, 1000+rand.IntN(9000))
		if !taken[code] {
			return code
		}
	}
}
