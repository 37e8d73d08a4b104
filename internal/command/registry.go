package command

import "sort"

var registry = map[string]Command{}

// Register registers a command under its name and aliases. The registry is
// populated from init functions and is read-only afterwards.
func Register(cmd Command) {
	registry[cmd.Name()] = cmd
	for _, a := range cmd.Aliases() {
		registry[a] = cmd
	}
}

// Get returns the command registered under the given name or alias.
func Get(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// All returns every registered command once, sorted by name.
func All() []Command {
	seen := map[string]bool{}
	list := make([]Command, 0, len(registry))
	for _, cmd := range registry {
		if seen[cmd.Name()] {
			continue
		}
		list = append(list, cmd)
		seen[cmd.Name()] = true
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}
