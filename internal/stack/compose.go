package stack

import (
	"fmt"

	"github.com/mailstead/mailstead/internal/config"
	"github.com/mailstead/mailstead/internal/util/naming"
)

// MailPorts are the mail, web, and websocket ports exposed to the
// world: SMTP (25, 465, 587), IMAP (143, 993), POP3 (110, 995), HTTP
// and HTTPS (80, 443), and the webmail websocket pair (8080, 8443).
var MailPorts = []int{25, 465, 587, 143, 993, 110, 995, 80, 443, 8080, 8443}

// SSHPort is the administrative access port, restricted to the
// resolved allowed CIDRs.
const SSHPort = 22

// Network layout for every environment. One VPC, one public subnet.
const (
	vpcCIDR    = "10.0.0.0/16"
	subnetCIDR = "10.0.0.0/24"
)

// backupRetentionDays is how long backup recovery points are kept.
const backupRetentionDays = 30

// backupScheduleCron runs the daily backup window at 05:00 UTC,
// outside of European and American business hours.
const backupScheduleCron = "cron(0 5 * * ? *)"

// MissingAccessError is returned by Compose when the configuration
// carries no administrative access path. A deployment nobody can log
// into is not deployable.
type MissingAccessError struct {
	Environment config.Environment
}

// Error implements the error interface.
func (e *MissingAccessError) Error() string {
	return fmt.Sprintf("no administrative access path for %s: set key_pair_name in %s or %s",
		e.Environment, config.DefaultOverridesFile, config.EnvVarKeyPair)
}

// step is one entry in the fixed composition order: a predicate
// deciding inclusion and a builder producing the resource. Modeling
// inclusion this way keeps ordering deterministic and lets each
// predicate be tested on its own.
type step struct {
	include func(*config.Resolved) bool
	build   func(*config.Resolved) ResourceSpec
}

func always(*config.Resolved) bool { return true }

// steps returns the composition order: network, compute, security,
// storage, secret always; monitoring, backup, dns by predicate.
func steps() []step {
	return []step{
		{always, buildNetwork},
		{always, buildCompute},
		{always, buildSecurity},
		{always, buildStorage},
		{always, buildSecret},
		{func(c *config.Resolved) bool { return c.Monitoring }, buildMonitoring},
		{func(c *config.Resolved) bool { return c.Backups }, buildBackup},
		{func(c *config.Resolved) bool { return c.HasDNS() }, buildDNS},
	}
}

// Compose turns a resolved configuration into a deployment
// specification. It assumes strict validation, if requested, has
// already passed; in advisory mode it composes regardless of
// warnings.
//
// Compose is pure and idempotent: identical input yields an identical
// resource list in identical order.
func Compose(cfg *config.Resolved) (*DeploymentSpec, error) {
	if cfg.KeyPairName == "" {
		return nil, &MissingAccessError{Environment: cfg.Environment}
	}

	spec := &DeploymentSpec{Config: cfg}
	for _, s := range steps() {
		if !s.include(cfg) {
			continue
		}
		spec.Resources = append(spec.Resources, s.build(cfg))
	}
	return spec, nil
}

func buildNetwork(cfg *config.Resolved) ResourceSpec {
	env := string(cfg.Environment)
	return ResourceSpec{
		Kind: KindNetwork,
		Name: naming.VPC(env),
		Network: &NetworkSpec{
			CIDR:           vpcCIDR,
			SubnetName:     naming.Subnet(env),
			SubnetCIDR:     subnetCIDR,
			MapPublicIP:    true,
			InternetFacing: true,
		},
	}
}

func buildCompute(cfg *config.Resolved) ResourceSpec {
	env := string(cfg.Environment)
	return ResourceSpec{
		Kind: KindCompute,
		Name: naming.Instance(env),
		Compute: &ComputeSpec{
			InstanceType: cfg.InstanceClass,
			VolumeSizeGB: cfg.VolumeSizeGB,
			KeyPairName:  cfg.KeyPairName,
			SubnetName:   naming.Subnet(env),
		},
	}
}

func buildSecurity(cfg *config.Resolved) ResourceSpec {
	rules := make([]IngressRule, 0, len(MailPorts)+1)
	for _, port := range MailPorts {
		rules = append(rules, IngressRule{
			Protocol:    "tcp",
			Port:        port,
			SourceCIDRs: []string{config.UnrestrictedCIDR},
			Description: mailPortDescription(port),
		})
	}
	rules = append(rules, IngressRule{
		Protocol:    "tcp",
		Port:        SSHPort,
		SourceCIDRs: append([]string(nil), cfg.AllowedSSHCidrs...),
		Description: "SSH administrative access",
	})

	return ResourceSpec{
		Kind:     KindSecurity,
		Name:     naming.SecurityGroup(string(cfg.Environment)),
		Security: &SecuritySpec{Ingress: rules},
	}
}

func mailPortDescription(port int) string {
	switch port {
	case 25:
		return "SMTP"
	case 465:
		return "SMTPS"
	case 587:
		return "SMTP submission"
	case 143:
		return "IMAP"
	case 993:
		return "IMAPS"
	case 110:
		return "POP3"
	case 995:
		return "POP3S"
	case 80:
		return "HTTP"
	case 443:
		return "HTTPS"
	case 8080:
		return "webmail websocket"
	case 8443:
		return "webmail websocket TLS"
	default:
		return fmt.Sprintf("port %d", port)
	}
}

func buildStorage(cfg *config.Resolved) ResourceSpec {
	env := string(cfg.Environment)
	return ResourceSpec{
		Kind: KindStorage,
		Name: naming.Bucket(env, cfg.AccountID),
		Storage: &StorageSpec{
			BucketName: naming.Bucket(env, cfg.AccountID),
			Versioned:  cfg.Environment.IsProduction(),
		},
	}
}

func buildSecret(cfg *config.Resolved) ResourceSpec {
	env := string(cfg.Environment)
	return ResourceSpec{
		Kind: KindSecret,
		Name: naming.Secret(env),
		Secret: &SecretSpec{
			SecretName:  naming.Secret(env),
			Description: "mail server authentication material",
		},
	}
}

func buildMonitoring(cfg *config.Resolved) ResourceSpec {
	env := string(cfg.Environment)
	return ResourceSpec{
		Kind: KindMonitoring,
		Name: naming.Alarm(env, "alarms"),
		Monitoring: &MonitoringSpec{
			Alarms: []AlarmSpec{
				{
					Name:              naming.Alarm(env, "cpu-high"),
					Metric:            "CPUUtilization",
					Threshold:         80,
					EvaluationPeriods: 3,
					PeriodSeconds:     300,
				},
				{
					Name:              naming.Alarm(env, "status-check-failed"),
					Metric:            "StatusCheckFailed",
					Threshold:         1,
					EvaluationPeriods: 2,
					PeriodSeconds:     60,
				},
				{
					Name:              naming.Alarm(env, "disk-high"),
					Metric:            "disk_used_percent",
					Threshold:         85,
					EvaluationPeriods: 3,
					PeriodSeconds:     300,
				},
			},
		},
	}
}

func buildBackup(cfg *config.Resolved) ResourceSpec {
	env := string(cfg.Environment)
	return ResourceSpec{
		Kind: KindBackup,
		Name: naming.BackupPlan(env),
		Backup: &BackupSpec{
			PlanName:      naming.BackupPlan(env),
			ScheduleCron:  backupScheduleCron,
			RetentionDays: backupRetentionDays,
		},
	}
}

func buildDNS(cfg *config.Resolved) ResourceSpec {
	env := string(cfg.Environment)
	return ResourceSpec{
		Kind: KindDNS,
		Name: naming.RecordSet(env),
		DNS: &DNSSpec{
			DomainName:   cfg.DomainName,
			HostedZoneID: cfg.HostedZoneID,
			Records: []DNSRecord{
				// A record target is the instance's public address,
				// known only after provisioning.
				{Type: "A", Name: cfg.DomainName},
				{Type: "MX", Name: cfg.DomainName, Value: "10 " + cfg.DomainName},
				{Type: "TXT", Name: cfg.DomainName, Value: `"v=spf1 a mx ~all"`},
			},
		},
	}
}
