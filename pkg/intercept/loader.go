package intercept

import (
	"errors"
	"fmt"

	"github.com/hostmock/hostmock/internal/registry"
	"github.com/hostmock/hostmock/pkg/config"
)

// LoadCollection registers every route a stub collection declares.
// Duplicate routes follow the usual rule: the first registration wins and
// later ones are logged and dropped, not treated as load failures.
func (c *Controller) LoadCollection(collection *config.Collection) error {
	for _, ns := range collection.Namespaces {
		for _, decl := range ns.Routes {
			rt, err := decl.ToRoute()
			if err != nil {
				return err
			}
			if err := c.registry.Add(ns.Host, rt); err != nil {
				if errors.Is(err, registry.ErrDuplicateRoute) {
					continue
				}
				return err
			}
		}
	}
	return nil
}

// LoadFile loads a stub collection file and registers its routes.
func (c *Controller) LoadFile(path string) error {
	collection, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	if err := c.LoadCollection(collection); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	c.log.Info("stub file loaded", "path", path, "routes", c.registry.Count())
	return nil
}

// LoadGlob loads every stub file matching the pattern (** supported) in
// sorted path order.
func (c *Controller) LoadGlob(pattern string) error {
	collections, err := config.LoadGlob(pattern)
	if err != nil {
		return err
	}
	for _, collection := range collections {
		if err := c.LoadCollection(collection); err != nil {
			return err
		}
	}
	return nil
}
