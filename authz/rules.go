package authz

import "fmt"

// Rules binds a gate to every guarded resource surface. The bindings are
// plain configuration: the contact collection and the task detail gates have
// flipped between variants historically, so none of them is hardcoded.
type Rules struct {
	ContactList   Gate
	ContactDetail Gate
	TaskList      Gate
	TaskDetail    Gate
	SubtaskList   Gate
	SubtaskDetail Gate
}

// DefaultRules matches the current production policy.
func DefaultRules() Rules {
	return Rules{
		ContactList:   GateStaff,
		ContactDetail: GateOwner,
		TaskList:      GateStaff,
		TaskDetail:    GateAdminTiered,
		SubtaskList:   GateStaff,
		SubtaskDetail: GateAdminTiered,
	}
}

// ParseRules resolves configured gate names, falling back to the defaults for
// empty entries.
func ParseRules(contactList, contactDetail, taskList, taskDetail, subtaskList, subtaskDetail string) (Rules, error) {
	rules := DefaultRules()
	entries := []struct {
		name   string
		target *Gate
		label  string
	}{
		{contactList, &rules.ContactList, "contact list"},
		{contactDetail, &rules.ContactDetail, "contact detail"},
		{taskList, &rules.TaskList, "task list"},
		{taskDetail, &rules.TaskDetail, "task detail"},
		{subtaskList, &rules.SubtaskList, "subtask list"},
		{subtaskDetail, &rules.SubtaskDetail, "subtask detail"},
	}
	for _, entry := range entries {
		if entry.name == "" {
			continue
		}
		gate, err := ParseGate(entry.name)
		if err != nil {
			return rules, fmt.Errorf("%s gate: %w", entry.label, err)
		}
		*entry.target = gate
	}
	return rules, nil
}
