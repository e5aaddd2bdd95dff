// Package wslutils lists the WSL distros registered on the host and lets
// scripts pick one of them, either by name or through an interactive menu.
//
// The listing comes from wsl.exe, whose tabular output is localised, aligned
// with an assortment of whitespace characters and, depending on the WSL
// release, encoded in UTF-16LE. This package turns it into a snapshot of
// Record values.
//
// This package also contains a mock WSL backend which can be useful for testing.
// This mock back-end is disabled by default. It is enabled by building with the
// wslutilsmock tag and using the context returned by the WithMock function.
package wslutils
