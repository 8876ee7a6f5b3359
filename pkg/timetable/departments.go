package timetable

import (
	"fmt"
	"strings"
)

// Department is a faculty programme whose classes share a code prefix
type Department struct {
	ID   string
	Name string
}

// Year is a level of study; level 3 is named "300"
type Year struct {
	ID   int
	Name string
}

// Departments lists the programmes the API serves timetables for
var Departments = []Department{
	{ID: "CE", Name: "Computer Science & Engineering"},
	{ID: "MN", Name: "Mining Engineering"},
	{ID: "MC", Name: "Mechanical Engineering"},
	{ID: "EL", Name: "Electrical Engineering"},
	{ID: "GM", Name: "Geomatic Engineering"},
	{ID: "SD", Name: "Statistical Data Science"},
	{ID: "CY", Name: "Cybersecurity"},
	{ID: "PE", Name: "Petroleum Engineering"},
	{ID: "RP", Name: "Petroleum Refining and Petrochemical Engineering"},
	{ID: "PG", Name: "Petroleum Geosciences"},
	{ID: "GL", Name: "Geological Engineering"},
	{ID: "MR", Name: "Minerals Engineering"},
	{ID: "RN", Name: "Renewable Engineering"},
	{ID: "NG", Name: "Natural Gas Engineering"},
	{ID: "IS", Name: "Information Systems"},
	{ID: "CH", Name: "Chemical Engineering"},
	{ID: "MA", Name: "Mathematics"},
	{ID: "ES", Name: "Environmental & Safety Engineering"},
	{ID: "LT", Name: "Logistics & Transportation"},
	{ID: "LA", Name: "Land Administration"},
	{ID: "SP", Name: "Spatial Planning"},
	{ID: "EC", Name: "Economics and Industrial Organization"},
}

// Years lists the levels of study
var Years = []Year{
	{ID: 1, Name: "100"},
	{ID: 2, Name: "200"},
	{ID: 3, Name: "300"},
	{ID: 4, Name: "400"},
}

// FindDepartment looks a department up by its code, case-insensitively.
func FindDepartment(id string) (Department, bool) {
	id = strings.ToUpper(strings.TrimSpace(id))
	for _, d := range Departments {
		if d.ID == id {
			return d, true
		}
	}
	return Department{}, false
}

// ClassPattern builds the class_pattern the API expects, e.g. "CE 3".
func ClassPattern(dept string, year int) (string, error) {
	d, ok := FindDepartment(dept)
	if !ok {
		return "", fmt.Errorf("unknown department %q", dept)
	}
	if year < 1 || year > len(Years) {
		return "", fmt.Errorf("year must be between 1 and %d, got %d", len(Years), year)
	}
	return fmt.Sprintf("%s %d", d.ID, year), nil
}
