// Package naming provides shared case conversion utilities.
//
// This internal package contains the string transformation functions the gen
// package uses to turn schema names into Go identifiers: ToPascalCase,
// ToCamelCase, ToSnakeCase, ToKebabCase, and ToTitleCase.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
