package kernel

import "strings"

type Email string

func (e Email) String() string { return string(e) }

// IsValid performs a structural check: one '@' with a dotted domain part.
func (e Email) IsValid() bool {
	s := string(e)
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	if strings.Count(s, "@") != 1 {
		return false
	}
	domain := s[at+1:]
	dot := strings.Index(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}
	return !strings.ContainsAny(s, " \t")
}

type Phone string

func (p Phone) String() string { return string(p) }

// IsValid accepts digits only, 10 to 15 characters.
func (p Phone) IsValid() bool {
	s := string(p)
	if len(s) < 10 || len(s) > 15 {
		return false
	}
	return isNumeric(s)
}

type FirstName string

func (n FirstName) String() string { return string(n) }

type LastName string

func (n LastName) String() string { return string(n) }

// Position is the role an applicant applies for (HR, Recruiter, Payroll, ...).
type Position string

func (p Position) String() string { return string(p) }

// EducationLevel is the highest attained education of an applicant.
type EducationLevel string

func (e EducationLevel) String() string { return string(e) }

// Source is where the applicant was sourced from (LinkedIn, Referral, ...).
type Source string

func (s Source) String() string { return string(s) }

type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

// BucketURL is a public object-storage URL.
type BucketURL string

func (b BucketURL) String() string { return string(b) }

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
