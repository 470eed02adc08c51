package handlers

import (
	"fmt"
	"strings"

	"github.com/mailstead/mailstead/internal/config"
)

// Environments prints the built-in environment profiles.
func Environments() error {
	fmt.Printf("%-12s %-10s %-8s %-10s %-8s %s\n",
		"ENVIRONMENT", "INSTANCE", "VOLUME", "MONITORING", "BACKUPS", "SSH")

	for _, env := range config.ValidEnvironments() {
		profile, err := config.ProfileFor(env)
		if err != nil {
			return err
		}
		fmt.Printf("%-12s %-10s %-8s %-10s %-8s %s\n",
			env,
			profile.InstanceClass,
			fmt.Sprintf("%dGB", profile.VolumeSizeGB),
			yesNo(profile.Monitoring),
			yesNo(profile.Backups),
			strings.Join(profile.AllowedSSHCidrs, ","),
		)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
