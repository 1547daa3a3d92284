package model

// Department is a short code identifying a college department.
type Department string

const (
	DeptInfoTech    Department = "bsit"
	DeptCompSci     Department = "bscs"
	DeptHospitality Department = "bshm"
	DeptEducation   Department = "bsed"
	DeptCriminology Department = "bscrim"
	DeptBusiness    Department = "bsba"
	DeptNursing     Department = "bsn"
)

// Departments lists every known department code.
func Departments() []Department {
	return []Department{
		DeptInfoTech,
		DeptCompSci,
		DeptHospitality,
		DeptEducation,
		DeptCriminology,
		DeptBusiness,
		DeptNursing,
	}
}

// IsKnownDepartment reports whether code is part of the closed enumeration.
// The resolution layer itself passes unknown codes through uninterpreted;
// this is for callers that want to iterate or validate at the edge.
func IsKnownDepartment(code string) bool {
	for _, d := range Departments() {
		if string(d) == code {
			return true
		}
	}
	return false
}
