package core

import (
	"context"
	"fmt"
	"os/exec"
)

// TagDetails identifies a tag by its normalized form so lookups are
// insensitive to case and diacritics.
type TagDetails struct {
	Raw        string
	Normalized string
}

// NewTagDetails parses a tag token once. Membership tests compare the
// normalized form.
func NewTagDetails(tag string) TagDetails {
	return TagDetails{Raw: tag, Normalized: Normalize(tag).Value}
}

// Tagged is the capability probe for entry kinds that expose a tag
// collection. Entries without it are never accepted by a tag search,
// even if their identity matches a tag token lexically.
type Tagged interface {
	Tags() []TagDetails
	HasTag(tag TagDetails) bool
}

// Launchable is implemented by entry kinds that define a launch action.
type Launchable interface {
	Launch(ctx context.Context) error
}

// Launch starts the entry's launch action. It panics when the entry kind
// defines none: that is a missing variant implementation, not a runtime
// condition.
func Launch(ctx context.Context, e Entry) error {
	l, ok := e.(Launchable)
	if !ok {
		panic(fmt.Sprintf("%v for %T", ErrNoLaunchAction, e))
	}
	return l.Launch(ctx)
}

// AppEntry is an installed application.
type AppEntry struct {
	EntryBase
	Exec string
	tags []TagDetails
}

// NewAppEntry creates an application entry. The identity is namespaced
// under the app provider scheme.
func NewAppEntry(component, name, execLine string) *AppEntry {
	return &AppEntry{
		EntryBase: NewEntryBase("app://"+component, name),
		Exec:      execLine,
	}
}

// SetTags replaces the entry's tag collection.
func (a *AppEntry) SetTags(tags ...string) {
	a.tags = a.tags[:0]
	for _, t := range tags {
		a.tags = append(a.tags, NewTagDetails(t))
	}
}

func (a *AppEntry) Tags() []TagDetails { return a.tags }

func (a *AppEntry) HasTag(tag TagDetails) bool {
	for _, t := range a.tags {
		if t.Normalized == tag.Normalized {
			return true
		}
	}
	return false
}

func (a *AppEntry) Launch(ctx context.Context) error {
	if a.Exec == "" {
		return fmt.Errorf("%w: %s", ErrNoLaunchAction, a.ID())
	}
	return exec.CommandContext(ctx, "/bin/sh", "-c", a.Exec).Start()
}

// ContactEntry is an address-book contact.
type ContactEntry struct {
	EntryBase
	Phone string
}

func NewContactEntry(lookupKey, name, phone string) *ContactEntry {
	return &ContactEntry{
		EntryBase: NewEntryBase("contact://"+lookupKey, name),
		Phone:     phone,
	}
}

func (c *ContactEntry) Launch(ctx context.Context) error {
	if c.Phone == "" {
		return fmt.Errorf("%w: %s has no phone number", ErrNoLaunchAction, c.ID())
	}
	return nil
}

// TagEntry represents a tag itself as a searchable result. Selecting it
// is handled by the UI (it re-issues a tag search), so it carries no
// launch action.
type TagEntry struct {
	EntryBase
	Tag string
}

func NewTagEntry(tag string) *TagEntry {
	return &TagEntry{
		EntryBase: NewEntryBase("tag://"+tag, tag),
		Tag:       tag,
	}
}

// SettingEntry is a shortcut to a settings screen.
type SettingEntry struct {
	EntryBase
	Command string
}

func NewSettingEntry(key, name, command string) *SettingEntry {
	return &SettingEntry{
		EntryBase: NewEntryBase("setting://"+key, name),
		Command:   command,
	}
}

func (s *SettingEntry) Launch(ctx context.Context) error {
	if s.Command == "" {
		return fmt.Errorf("%w: %s", ErrNoLaunchAction, s.ID())
	}
	return exec.CommandContext(ctx, "/bin/sh", "-c", s.Command).Start()
}
