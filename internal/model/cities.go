package model

import "strings"

// Governorates of Tunisia accepted as locations.
var Governorates = []string{
	"Tunis", "Ariana", "Ben Arous", "Manouba", "Nabeul", "Zaghouan", "Bizerte",
	"Béja", "Jendouba", "Le Kef", "Siliana", "Sousse", "Monastir", "Mahdia",
	"Sfax", "Kairouan", "Kasserine", "Sidi Bouzid", "Gabès", "Medenine",
	"Tataouine", "Gafsa", "Tozeur", "Kebili",
}

// IsGovernorate matches a location against the governorate list, ignoring case.
func IsGovernorate(location string) bool {
	location = strings.TrimSpace(location)
	for _, g := range Governorates {
		if strings.EqualFold(g, location) {
			return true
		}
	}
	return false
}
