// Package formats provides parsers for mesh file formats.
package formats

// Note: the OBJ v/f subset is implemented in obj.go
