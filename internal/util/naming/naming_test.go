package naming

import "testing"

func TestNamingFunctions(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"vpc", VPC("dev"), "mailstead-dev-vpc"},
		{"subnet", Subnet("dev"), "mailstead-dev-public"},
		{"instance", Instance("staging"), "mailstead-staging-server"},
		{"security group", SecurityGroup("production"), "mailstead-production-sg"},
		{"bucket with account", Bucket("production", "123456789012"), "mailstead-production-mail-123456789012"},
		{"bucket without account", Bucket("dev", ""), "mailstead-dev-mail"},
		{"secret", Secret("production"), "mailstead/production/credentials"},
		{"alarm", Alarm("production", "cpu-high"), "mailstead-production-cpu-high"},
		{"backup plan", BackupPlan("staging"), "mailstead-staging-backup"},
		{"record set", RecordSet("production"), "mailstead-production-dns"},
		{"log group", LogGroup("production"), "/mailstead/production/mail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestNamingIsDeterministic(t *testing.T) {
	if VPC("dev") != VPC("dev") {
		t.Fatal("naming must be deterministic")
	}
}
