// Package schemas defines the data structures
package schemas

import "time"

// User represents the data model for a registered account.
// The password column holds a bcrypt hash and is never serialized out.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Mail     string `json:"mail"`
	Password string `json:"-"`
}

// Planet represents a catalog planet. Catalog rows are read-only
// reference data; created/edited are assigned by the database at insert.
type Planet struct {
	UID            int        `json:"uid"`
	Diameter       int        `json:"diameter"`
	RotationPeriod int        `json:"rotation_period"`
	OrbitalPeriod  int        `json:"orbital_period"`
	Gravity        string     `json:"gravity"`
	Population     int64      `json:"population"`
	Climate        string     `json:"climate"`
	Terrain        string     `json:"terrain"`
	SurfaceWater   int        `json:"surface_water"`
	Created        *time.Time `json:"created"`
	Edited         *time.Time `json:"edited"`
	Name           string     `json:"name"`
}

// Character represents a catalog character. Homeworld is a required
// reference to Planet.UID.
type Character struct {
	UID       int        `json:"uid"`
	Height    int        `json:"height"`
	Mass      int        `json:"mass"`
	HairColor string     `json:"hair_color"`
	SkinColor string     `json:"skin_color"`
	EyeColor  string     `json:"eye_color"`
	BirthYear string     `json:"birth_year"`
	Gender    string     `json:"gender"`
	Created   *time.Time `json:"created"`
	Edited    *time.Time `json:"edited"`
	Name      string     `json:"name"`
	Homeworld int        `json:"homeworld"`
}
