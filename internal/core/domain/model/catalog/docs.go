// Package catalog holds the menu read model consumed when an order is placed:
// products, their availability rule and their modifier options.
package catalog
