package deploy

import (
	"fmt"

	"github.com/mailstead/mailstead/internal/aws"
	"github.com/mailstead/mailstead/internal/policy"
	"github.com/mailstead/mailstead/internal/stack"
	"github.com/mailstead/mailstead/internal/util/naming"
)

// ValidationPhase checks the resolved configuration against policy.
// In strict mode any error-severity issue aborts the pipeline before
// anything is composed.
type ValidationPhase struct{}

// Name implements Phase.
func (*ValidationPhase) Name() string { return "validation" }

// Run implements Phase.
func (*ValidationPhase) Run(ctx *Context) error {
	issues := policy.Validate(ctx.Config, ctx.Strict)
	ctx.State.Issues = issues

	for _, issue := range issues {
		if issue.IsError() {
			ctx.Log.Info("validation error", "code", issue.Code, "message", issue.Message)
		} else {
			ctx.Log.Info("validation warning", "code", issue.Code, "message", issue.Message)
		}
	}

	return policy.ErrorIfBlocked(issues, ctx.Strict)
}

// CompositionPhase turns the configuration into the tagged deployment
// spec.
type CompositionPhase struct{}

// Name implements Phase.
func (*CompositionPhase) Name() string { return "composition" }

// Run implements Phase.
func (*CompositionPhase) Run(ctx *Context) error {
	spec, err := stack.Compose(ctx.Config)
	if err != nil {
		return err
	}
	ctx.State.Spec = stack.Tag(spec, ctx.Config)
	ctx.Log.Info("composed deployment", "resources", len(ctx.State.Spec.Resources))
	return nil
}

// ProvisionPhase walks the composed resources in order and drives the
// backend. Resource dependencies follow composition order: the network
// exists before the instance, the instance before the group that
// attaches to it, and DNS last because the A record needs the public
// address.
type ProvisionPhase struct{}

// Name implements Phase.
func (*ProvisionPhase) Name() string { return "provisioning" }

// Run implements Phase.
func (p *ProvisionPhase) Run(ctx *Context) error {
	spec := ctx.State.Spec
	if spec == nil {
		return fmt.Errorf("no composed spec; composition phase must run first")
	}

	result := &ctx.State.Result
	for _, res := range spec.Resources {
		ctx.Log.Info("ensuring resource", "kind", res.Kind, "name", res.Name)
		if err := p.provision(ctx, res); err != nil {
			return err
		}
	}

	if spec.Resource(stack.KindMonitoring) != nil {
		// The CloudWatch agent on the instance ships journal and mail
		// logs to the conventional group.
		result.LogGroup = naming.LogGroup(string(ctx.Config.Environment))
	}
	return nil
}

func (*ProvisionPhase) provision(ctx *Context, res stack.ResourceSpec) error {
	result := &ctx.State.Result
	var err error

	switch res.Kind {
	case stack.KindNetwork:
		out, nerr := ctx.Backend.EnsureNetwork(ctx, res)
		result.VPCID, result.SubnetID = out.VPCID, out.SubnetID
		err = nerr
	case stack.KindCompute:
		net := aws.NetworkOutput{VPCID: result.VPCID, SubnetID: result.SubnetID}
		out, cerr := ctx.Backend.EnsureInstance(ctx, res, net)
		result.InstanceID, result.PublicIP = out.InstanceID, out.PublicIP
		err = cerr
	case stack.KindSecurity:
		result.SecurityGroupID, err = ctx.Backend.EnsureSecurityGroup(ctx, res, result.VPCID, result.InstanceID)
	case stack.KindStorage:
		result.BucketName, err = ctx.Backend.EnsureBucket(ctx, res)
	case stack.KindSecret:
		result.SecretARN, err = ctx.Backend.EnsureSecret(ctx, res)
	case stack.KindMonitoring:
		result.AlarmNames, err = ctx.Backend.EnsureAlarms(ctx, res, result.InstanceID)
	case stack.KindBackup:
		result.BackupPlan, err = ctx.Backend.EnsureBackupSelection(ctx, res)
	case stack.KindDNS:
		result.DNSChangeID, err = ctx.Backend.EnsureDNSRecords(ctx, res, result.PublicIP)
	default:
		return fmt.Errorf("unknown resource kind %q", res.Kind)
	}
	if err != nil {
		return fmt.Errorf("failed to ensure %s %s: %w", res.Kind, res.Name, err)
	}
	return nil
}
