package injector

import (
	"github.com/joho/godotenv"
)

// BindEnv reads the given .env files and binds every variable in them as
// a string instance named after the variable. With no files it reads
// ".env" in the working directory. Variables are not added to the process
// environment.
//
// A variable that is already bound is reported along with any other
// failure; the rest are still bound.
func (c *Container) BindEnv(filenames ...string) error {
	vars, err := godotenv.Read(filenames...)
	if err != nil {
		return err
	}

	m := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		m[k] = v
	}

	c.logger.Debug("binding environment", "files", filenames, "count", len(m))
	return c.BindInstances(m)
}
