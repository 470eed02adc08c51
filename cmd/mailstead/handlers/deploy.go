package handlers

import (
	"context"
	"fmt"

	"github.com/mailstead/mailstead/internal/aws"
	"github.com/mailstead/mailstead/internal/deploy"
)

// Factory function variables for deploy - can be replaced in tests.
var (
	// newRealBackend creates the AWS-backed provisioner.
	newRealBackend = func(ctx context.Context, region string) (aws.Provisioner, error) {
		return aws.NewRealClient(ctx, region)
	}

	// newDryRunBackend creates the call-recording stub backend.
	newDryRunBackend = func() aws.Provisioner {
		return aws.NewMockProvisioner()
	}
)

// Deploy runs the full pipeline for an environment: validate the
// resolved configuration, compose and tag the resource set, and
// provision each resource in order.
func Deploy(ctx context.Context, envFlag, configPath string, strictFlag, dryRun bool) error {
	cfg, strict, err := resolveTarget(envFlag, configPath, strictFlag)
	if err != nil {
		return err
	}

	var backend aws.Provisioner
	if dryRun {
		backend = newDryRunBackend()
	} else {
		backend, err = newRealBackend(ctx, cfg.Region)
		if err != nil {
			return fmt.Errorf("failed to initialize AWS backend: %w", err)
		}
	}

	dctx := deploy.NewContext(ctx, cfg, strict, backend, newLogger())
	if err := deploy.Run(dctx, deploy.Phases()); err != nil {
		return err
	}

	printDeploySuccess(dctx, dryRun)
	return nil
}

// printDeploySuccess outputs the provisioned identifiers and next
// steps for the user.
func printDeploySuccess(dctx *deploy.Context, dryRun bool) {
	result := dctx.State.Result

	fmt.Println()
	if dryRun {
		fmt.Printf("Dry run complete for %s. No AWS calls were made.\n", dctx.Config.Environment)
	} else {
		fmt.Printf("Deployment complete for %s.\n", dctx.Config.Environment)
	}
	fmt.Println()

	fmt.Printf("  VPC:            %s\n", result.VPCID)
	fmt.Printf("  Instance:       %s (%s)\n", result.InstanceID, result.PublicIP)
	fmt.Printf("  Security group: %s\n", result.SecurityGroupID)
	fmt.Printf("  Bucket:         %s\n", result.BucketName)
	fmt.Printf("  Secret:         %s\n", result.SecretARN)
	if len(result.AlarmNames) > 0 {
		fmt.Printf("  Alarms:         %d configured\n", len(result.AlarmNames))
	}
	if result.BackupPlan != "" {
		fmt.Printf("  Backup plan:    %s\n", result.BackupPlan)
	}
	if result.DNSChangeID != "" {
		fmt.Printf("  DNS change:     %s\n", result.DNSChangeID)
	}

	if !dryRun && result.PublicIP != "" {
		fmt.Println()
		fmt.Println("You can now reach the instance with:")
		fmt.Printf("  ssh -i <your-key> ec2-user@%s\n", result.PublicIP)
	}
}
