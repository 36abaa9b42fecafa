package terms

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// defaultTerms are searched in this order on every run.
var defaultTerms = []string{
	"bronze mastery chain link Aegis Keep Damage",
	"bronze mastery chain link Alchemy/Healing/Vet",
	"bronze mastery chain link Bard Reset/Break Ignore Chance",
	"bronze mastery chain link Barding Effect Durations",
	"bronze mastery chain link Cavernam Damage",
	"bronze mastery chain link Chest Success Chance / Progress",
	"bronze mastery chain link Chivalry Skill",
	"bronze mastery chain link Damage on Ships",
	"bronze mastery chain link Damage to Barded Creatures",
	"bronze mastery chain link Damage to Creatures Above 66%",
	"bronze mastery chain link Damage to Diseased Creatures",
	"bronze mastery chain link Damage to Poisoned Creatures",
	"bronze mastery chain link Darkmire Temple Damage",
	"bronze mastery chain link Effective Barding Skill",
	"bronze mastery chain link Effective Poisoning Skill",
	"bronze mastery chain link Exceptional Quality Chance",
	"bronze mastery chain link Follower Accuracy/Defense",
	"bronze mastery chain link Inferno Damage",
	"bronze mastery chain link Kraul Hive Damage",
	"bronze mastery chain link Mausoleum Damage",
	"bronze mastery chain link Melee Accuracy/Defense",
	"bronze mastery chain link Melee Aspect Effect Modifier",
	"bronze mastery chain link Melee Damage/Ignore Chance",
	"bronze mastery chain link Melee Special Chance/Special Damage",
	"bronze mastery chain link Melee Swing Speed",
	"bronze mastery chain link Necromancy Skill",
	"bronze mastery chain link Nusero Damage",
	"bronze mastery chain link Netherzone Damage",
	"bronze mastery chain link Ossuary Damage",
	"bronze mastery chain link Poison Damage/Resist Ignore",
	"bronze mastery chain link Ship Cannon Damage",
	"bronze mastery chain link Special/Rare Loot Chance",
	"bronze mastery chain link Spell Damage no Followers",
	"bronze mastery chain link Spirit Speak/Inscription",
	"bronze mastery chain link Trap Damage",
	"bronze mastery chain link Wilderness Damage",
	"silver mastery chain link Chest Success Chances/Progress",
	"silver mastery chain link Chivalry Skill",
	"silver mastery chain link Damage to Barded Creatures",
	"silver mastery chain link Damage to Bleeding Creatures",
	"silver mastery chain link Effective Poisoning Skill",
	"silver mastery chain link Follower Accuracy/Defense",
	"silver mastery chain link Mausoleum Damage",
	"silver mastery chain link Necromancy Skill",
	"silver mastery chain link Netherzone Damage",
	"silver mastery chain link Nusero Damage",
	"silver mastery chain link Pulma Damage",
	"silver mastery chain link Special/Rare Loot Chance",
	"silver mastery chain link Spell Damage No Followers",
	"silver mastery chain link Trap Damage",
	"gold mastery chain link Cavernam Damage",
	"gold mastery chain link Effective Skill on Chest",
	"gold mastery chain link Melee Special Chance/Special Damage",
	"Air aspect core",
	"Arcane aspect core",
	"Artisan aspect core",
	"Blood aspect core",
	"Command aspect core",
	"Death aspect core",
	"Chromatic core",
	"Discipline aspect core",
	"Earth aspect core",
	"Eldritch aspect core",
	"Fire aspect core",
	"Fortune aspect core",
	"Frost aspect core",
	"Gadget aspect core",
	"Harvest aspect core",
	"Holy aspect core",
	"Lightning aspect core",
	"Lyric aspect core",
	"Madness aspect core",
	"Poison aspect core",
	"Shadow aspect core",
	"Void aspect core",
	"Water aspect core",
}

// Default returns a copy of the built-in search list.
func Default() []string {
	out := make([]string, len(defaultTerms))
	copy(out, defaultTerms)
	return out
}

type termsFile struct {
	Terms []string `yaml:"terms"`
}

// LoadFile reads a YAML document of the form `terms: [...]`.
func LoadFile(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read terms file: %w", err)
	}

	var f termsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse terms file %s: %w", path, err)
	}

	out := make([]string, 0, len(f.Terms))
	for _, term := range f.Terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		out = append(out, term)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("terms file %s has no search terms", path)
	}
	return out, nil
}

// Resolve returns the terms from path, or the built-in list when path is empty.
func Resolve(path string) ([]string, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
