// Package staff models users and their closed set of roles.
package staff
