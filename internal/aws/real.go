package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	smtypes "github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"

	"github.com/mailstead/mailstead/internal/stack"
	"github.com/mailstead/mailstead/internal/util/retry"
)

// RealClient implements Provisioner against the AWS APIs.
type RealClient struct {
	ec2    *ec2.Client
	s3     *s3.Client
	sm     *secretsmanager.Client
	cw     *cloudwatch.Client
	r53    *route53.Client
	region string
}

// NewRealClient builds a client from the default AWS credential chain.
// An empty region defers to the chain's own resolution.
func NewRealClient(ctx context.Context, region string) (*RealClient, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &RealClient{
		ec2:    ec2.NewFromConfig(cfg),
		s3:     s3.NewFromConfig(cfg),
		sm:     secretsmanager.NewFromConfig(cfg),
		cw:     cloudwatch.NewFromConfig(cfg),
		r53:    route53.NewFromConfig(cfg),
		region: cfg.Region,
	}, nil
}

// EnsureNetwork implements NetworkProvisioner.
func (c *RealClient) EnsureNetwork(ctx context.Context, res stack.ResourceSpec) (NetworkOutput, error) {
	spec := res.Network

	vpcID, err := c.findVPC(ctx, res.Name)
	if err != nil {
		return NetworkOutput{}, err
	}
	if vpcID == "" {
		out, err := c.ec2.CreateVpc(ctx, &ec2.CreateVpcInput{
			CidrBlock: aws.String(spec.CIDR),
			TagSpecifications: []ec2types.TagSpecification{
				tagSpec(ec2types.ResourceTypeVpc, res.Name, res.Tags),
			},
		})
		if err != nil {
			return NetworkOutput{}, fmt.Errorf("failed to create VPC %s: %w", res.Name, err)
		}
		vpcID = aws.ToString(out.Vpc.VpcId)

		if spec.InternetFacing {
			if err := c.attachInternetGateway(ctx, vpcID, res); err != nil {
				return NetworkOutput{}, err
			}
		}
	}

	subnetID, err := c.findSubnet(ctx, vpcID, spec.SubnetName)
	if err != nil {
		return NetworkOutput{}, err
	}
	if subnetID == "" {
		out, err := c.ec2.CreateSubnet(ctx, &ec2.CreateSubnetInput{
			VpcId:     aws.String(vpcID),
			CidrBlock: aws.String(spec.SubnetCIDR),
			TagSpecifications: []ec2types.TagSpecification{
				tagSpec(ec2types.ResourceTypeSubnet, spec.SubnetName, res.Tags),
			},
		})
		if err != nil {
			return NetworkOutput{}, fmt.Errorf("failed to create subnet %s: %w", spec.SubnetName, err)
		}
		subnetID = aws.ToString(out.Subnet.SubnetId)

		if spec.MapPublicIP {
			_, err = c.ec2.ModifySubnetAttribute(ctx, &ec2.ModifySubnetAttributeInput{
				SubnetId:            aws.String(subnetID),
				MapPublicIpOnLaunch: &ec2types.AttributeBooleanValue{Value: aws.Bool(true)},
			})
			if err != nil {
				return NetworkOutput{}, fmt.Errorf("failed to enable public IPs on %s: %w", spec.SubnetName, err)
			}
		}
	}

	return NetworkOutput{VPCID: vpcID, SubnetID: subnetID}, nil
}

func (c *RealClient) findVPC(ctx context.Context, name string) (string, error) {
	out, err := c.ec2.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{
		Filters: []ec2types.Filter{nameTagFilter(name)},
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe VPCs: %w", err)
	}
	if len(out.Vpcs) == 0 {
		return "", nil
	}
	return aws.ToString(out.Vpcs[0].VpcId), nil
}

func (c *RealClient) findSubnet(ctx context.Context, vpcID, name string) (string, error) {
	out, err := c.ec2.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("vpc-id"), Values: []string{vpcID}},
			nameTagFilter(name),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe subnets: %w", err)
	}
	if len(out.Subnets) == 0 {
		return "", nil
	}
	return aws.ToString(out.Subnets[0].SubnetId), nil
}

func (c *RealClient) attachInternetGateway(ctx context.Context, vpcID string, res stack.ResourceSpec) error {
	igw, err := c.ec2.CreateInternetGateway(ctx, &ec2.CreateInternetGatewayInput{
		TagSpecifications: []ec2types.TagSpecification{
			tagSpec(ec2types.ResourceTypeInternetGateway, res.Name+"-igw", res.Tags),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create internet gateway: %w", err)
	}
	igwID := aws.ToString(igw.InternetGateway.InternetGatewayId)

	_, err = c.ec2.AttachInternetGateway(ctx, &ec2.AttachInternetGatewayInput{
		InternetGatewayId: aws.String(igwID),
		VpcId:             aws.String(vpcID),
	})
	if err != nil {
		return fmt.Errorf("failed to attach internet gateway: %w", err)
	}

	rts, err := c.ec2.DescribeRouteTables(ctx, &ec2.DescribeRouteTablesInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("vpc-id"), Values: []string{vpcID}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to describe route tables: %w", err)
	}
	if len(rts.RouteTables) == 0 {
		return fmt.Errorf("VPC %s has no main route table", vpcID)
	}

	_, err = c.ec2.CreateRoute(ctx, &ec2.CreateRouteInput{
		RouteTableId:         rts.RouteTables[0].RouteTableId,
		DestinationCidrBlock: aws.String("0.0.0.0/0"),
		GatewayId:            aws.String(igwID),
	})
	if err != nil {
		return fmt.Errorf("failed to create default route: %w", err)
	}
	return nil
}

// EnsureInstance implements ComputeProvisioner.
func (c *RealClient) EnsureInstance(ctx context.Context, res stack.ResourceSpec, net NetworkOutput) (InstanceOutput, error) {
	spec := res.Compute

	instanceID, err := c.findInstance(ctx, res.Name)
	if err != nil {
		return InstanceOutput{}, err
	}

	if instanceID == "" {
		imageID, err := c.latestImage(ctx)
		if err != nil {
			return InstanceOutput{}, err
		}

		out, err := c.ec2.RunInstances(ctx, &ec2.RunInstancesInput{
			ImageId:      aws.String(imageID),
			InstanceType: ec2types.InstanceType(spec.InstanceType),
			KeyName:      aws.String(spec.KeyPairName),
			MinCount:     aws.Int32(1),
			MaxCount:     aws.Int32(1),
			SubnetId:     aws.String(net.SubnetID),
			BlockDeviceMappings: []ec2types.BlockDeviceMapping{
				{
					DeviceName: aws.String("/dev/xvda"),
					Ebs: &ec2types.EbsBlockDevice{
						VolumeSize: aws.Int32(int32(spec.VolumeSizeGB)),
						VolumeType: ec2types.VolumeTypeGp3,
						Encrypted:  aws.Bool(true),
					},
				},
			},
			TagSpecifications: []ec2types.TagSpecification{
				tagSpec(ec2types.ResourceTypeInstance, res.Name, res.Tags),
				tagSpec(ec2types.ResourceTypeVolume, res.Name, res.Tags),
			},
		})
		if err != nil {
			return InstanceOutput{}, fmt.Errorf("failed to launch instance %s: %w", res.Name, err)
		}
		instanceID = aws.ToString(out.Instances[0].InstanceId)
	}

	return c.waitRunning(ctx, instanceID)
}

// latestImage returns the newest Amazon Linux 2023 x86_64 AMI.
func (c *RealClient) latestImage(ctx context.Context) (string, error) {
	out, err := c.ec2.DescribeImages(ctx, &ec2.DescribeImagesInput{
		Owners: []string{"amazon"},
		Filters: []ec2types.Filter{
			{Name: aws.String("name"), Values: []string{"al2023-ami-2023*-x86_64"}},
			{Name: aws.String("state"), Values: []string{"available"}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe images: %w", err)
	}
	if len(out.Images) == 0 {
		return "", fmt.Errorf("no Amazon Linux 2023 image available in %s", c.region)
	}

	latest := out.Images[0]
	for _, img := range out.Images[1:] {
		if aws.ToString(img.CreationDate) > aws.ToString(latest.CreationDate) {
			latest = img
		}
	}
	return aws.ToString(latest.ImageId), nil
}

func (c *RealClient) findInstance(ctx context.Context, name string) (string, error) {
	out, err := c.ec2.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		Filters: []ec2types.Filter{
			nameTagFilter(name),
			{Name: aws.String("instance-state-name"), Values: []string{"pending", "running"}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe instances: %w", err)
	}
	for _, r := range out.Reservations {
		for _, inst := range r.Instances {
			return aws.ToString(inst.InstanceId), nil
		}
	}
	return "", nil
}

// waitRunning polls until the instance is running with a public
// address. Launch latency is normal, so polling errors are transient
// by default.
func (c *RealClient) waitRunning(ctx context.Context, instanceID string) (InstanceOutput, error) {
	var result InstanceOutput
	err := retry.WithExponentialBackoff(ctx, func() error {
		out, err := c.ec2.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
			InstanceIds: []string{instanceID},
		})
		if err != nil {
			if !isRetryable(err) {
				return retry.Fatal(err)
			}
			return err
		}
		for _, r := range out.Reservations {
			for _, inst := range r.Instances {
				if inst.State.Name != ec2types.InstanceStateNameRunning {
					return fmt.Errorf("instance %s is %s", instanceID, inst.State.Name)
				}
				if inst.PublicIpAddress == nil {
					return fmt.Errorf("instance %s has no public address yet", instanceID)
				}
				result = InstanceOutput{
					InstanceID: instanceID,
					PublicIP:   aws.ToString(inst.PublicIpAddress),
				}
				return nil
			}
		}
		return retry.Fatal(fmt.Errorf("instance %s disappeared", instanceID))
	}, retry.WithMaxRetries(20), retry.WithInitialDelay(3*time.Second), retry.WithMaxDelay(15*time.Second))
	if err != nil {
		return InstanceOutput{}, fmt.Errorf("instance %s did not become ready: %w", instanceID, err)
	}
	return result, nil
}

// EnsureSecurityGroup implements SecurityProvisioner.
func (c *RealClient) EnsureSecurityGroup(ctx context.Context, res stack.ResourceSpec, vpcID, instanceID string) (string, error) {
	sgID, err := c.findSecurityGroup(ctx, vpcID, res.Name)
	if err != nil {
		return "", err
	}

	if sgID == "" {
		out, err := c.ec2.CreateSecurityGroup(ctx, &ec2.CreateSecurityGroupInput{
			GroupName:   aws.String(res.Name),
			Description: aws.String("mailstead mail server access"),
			VpcId:       aws.String(vpcID),
			TagSpecifications: []ec2types.TagSpecification{
				tagSpec(ec2types.ResourceTypeSecurityGroup, res.Name, res.Tags),
			},
		})
		if err != nil {
			return "", fmt.Errorf("failed to create security group %s: %w", res.Name, err)
		}
		sgID = aws.ToString(out.GroupId)
	}

	perms := make([]ec2types.IpPermission, 0, len(res.Security.Ingress))
	for _, rule := range res.Security.Ingress {
		ranges := make([]ec2types.IpRange, 0, len(rule.SourceCIDRs))
		for _, cidr := range rule.SourceCIDRs {
			ranges = append(ranges, ec2types.IpRange{
				CidrIp:      aws.String(cidr),
				Description: aws.String(rule.Description),
			})
		}
		perms = append(perms, ec2types.IpPermission{
			IpProtocol: aws.String(rule.Protocol),
			FromPort:   aws.Int32(int32(rule.Port)),
			ToPort:     aws.Int32(int32(rule.Port)),
			IpRanges:   ranges,
		})
	}

	_, err = c.ec2.AuthorizeSecurityGroupIngress(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
		GroupId:       aws.String(sgID),
		IpPermissions: perms,
	})
	if err != nil && !isDuplicateRule(err) {
		return "", fmt.Errorf("failed to authorize ingress on %s: %w", res.Name, err)
	}

	_, err = c.ec2.ModifyInstanceAttribute(ctx, &ec2.ModifyInstanceAttributeInput{
		InstanceId: aws.String(instanceID),
		Groups:     []string{sgID},
	})
	if err != nil {
		return "", fmt.Errorf("failed to attach security group to %s: %w", instanceID, err)
	}
	return sgID, nil
}

func (c *RealClient) findSecurityGroup(ctx context.Context, vpcID, name string) (string, error) {
	out, err := c.ec2.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("vpc-id"), Values: []string{vpcID}},
			{Name: aws.String("group-name"), Values: []string{name}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe security groups: %w", err)
	}
	if len(out.SecurityGroups) == 0 {
		return "", nil
	}
	return aws.ToString(out.SecurityGroups[0].GroupId), nil
}

// EnsureBucket implements StorageProvisioner.
func (c *RealClient) EnsureBucket(ctx context.Context, res stack.ResourceSpec) (string, error) {
	spec := res.Storage

	input := &s3.CreateBucketInput{Bucket: aws.String(spec.BucketName)}
	// us-east-1 rejects an explicit location constraint.
	if c.region != "" && c.region != "us-east-1" {
		input.CreateBucketConfiguration = &s3types.CreateBucketConfiguration{
			LocationConstraint: s3types.BucketLocationConstraint(c.region),
		}
	}

	_, err := c.s3.CreateBucket(ctx, input)
	if err != nil && !isBucketOwned(err) {
		return "", fmt.Errorf("failed to create bucket %s: %w", spec.BucketName, err)
	}

	if spec.Versioned {
		_, err = c.s3.PutBucketVersioning(ctx, &s3.PutBucketVersioningInput{
			Bucket: aws.String(spec.BucketName),
			VersioningConfiguration: &s3types.VersioningConfiguration{
				Status: s3types.BucketVersioningStatusEnabled,
			},
		})
		if err != nil {
			return "", fmt.Errorf("failed to enable versioning on %s: %w", spec.BucketName, err)
		}
	}

	tagSet := make([]s3types.Tag, 0, len(res.Tags))
	for k, v := range res.Tags {
		tagSet = append(tagSet, s3types.Tag{Key: aws.String(k), Value: aws.String(v)})
	}
	_, err = c.s3.PutBucketTagging(ctx, &s3.PutBucketTaggingInput{
		Bucket:  aws.String(spec.BucketName),
		Tagging: &s3types.Tagging{TagSet: tagSet},
	})
	if err != nil {
		return "", fmt.Errorf("failed to tag bucket %s: %w", spec.BucketName, err)
	}

	return spec.BucketName, nil
}

// EnsureSecret implements SecretProvisioner.
func (c *RealClient) EnsureSecret(ctx context.Context, res stack.ResourceSpec) (string, error) {
	spec := res.Secret

	smTags := make([]smtypes.Tag, 0, len(res.Tags))
	for k, v := range res.Tags {
		smTags = append(smTags, smtypes.Tag{Key: aws.String(k), Value: aws.String(v)})
	}

	out, err := c.sm.CreateSecret(ctx, &secretsmanager.CreateSecretInput{
		Name:        aws.String(spec.SecretName),
		Description: aws.String(spec.Description),
		Tags:        smTags,
	})
	if err == nil {
		return aws.ToString(out.ARN), nil
	}
	if !isSecretExists(err) {
		return "", fmt.Errorf("failed to create secret %s: %w", spec.SecretName, err)
	}

	desc, err := c.sm.DescribeSecret(ctx, &secretsmanager.DescribeSecretInput{
		SecretId: aws.String(spec.SecretName),
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe secret %s: %w", spec.SecretName, err)
	}
	return aws.ToString(desc.ARN), nil
}

// EnsureAlarms implements MonitoringProvisioner.
func (c *RealClient) EnsureAlarms(ctx context.Context, res stack.ResourceSpec, instanceID string) ([]string, error) {
	names := make([]string, 0, len(res.Monitoring.Alarms))
	for _, alarm := range res.Monitoring.Alarms {
		input := &cloudwatch.PutMetricAlarmInput{
			AlarmName:          aws.String(alarm.Name),
			MetricName:         aws.String(alarm.Metric),
			Namespace:          aws.String(alarmNamespace(alarm.Metric)),
			Statistic:          alarmStatistic(alarm.Metric),
			Period:             aws.Int32(int32(alarm.PeriodSeconds)),
			EvaluationPeriods:  aws.Int32(int32(alarm.EvaluationPeriods)),
			Threshold:          aws.Float64(alarm.Threshold),
			ComparisonOperator: cwtypes.ComparisonOperatorGreaterThanOrEqualToThreshold,
			Dimensions: []cwtypes.Dimension{
				{Name: aws.String("InstanceId"), Value: aws.String(instanceID)},
			},
		}
		if _, err := c.cw.PutMetricAlarm(ctx, input); err != nil {
			return nil, fmt.Errorf("failed to put alarm %s: %w", alarm.Name, err)
		}
		names = append(names, alarm.Name)
	}
	return names, nil
}

// alarmNamespace maps a metric to its CloudWatch namespace. Disk usage
// comes from the CloudWatch agent on the instance, not from EC2.
func alarmNamespace(metric string) string {
	if metric == "disk_used_percent" {
		return "CWAgent"
	}
	return "AWS/EC2"
}

func alarmStatistic(metric string) cwtypes.Statistic {
	if metric == "StatusCheckFailed" {
		return cwtypes.StatisticMaximum
	}
	return cwtypes.StatisticAverage
}

// EnsureBackupSelection implements BackupProvisioner. The account's
// backup plan selects resources by tag, so coverage is established by
// the tags applied at creation; this confirms the selection tag is
// present and reports the plan name.
func (c *RealClient) EnsureBackupSelection(_ context.Context, res stack.ResourceSpec) (string, error) {
	if len(res.Tags) == 0 {
		return "", fmt.Errorf("backup selection requires tagged resources; spec %s carries no tags", res.Name)
	}
	return res.Backup.PlanName, nil
}

// EnsureDNSRecords implements DNSProvisioner.
func (c *RealClient) EnsureDNSRecords(ctx context.Context, res stack.ResourceSpec, publicIP string) (string, error) {
	spec := res.DNS

	changes := make([]r53types.Change, 0, len(spec.Records))
	for _, record := range spec.Records {
		value := record.Value
		if record.Type == "A" {
			value = publicIP
		}
		changes = append(changes, r53types.Change{
			Action: r53types.ChangeActionUpsert,
			ResourceRecordSet: &r53types.ResourceRecordSet{
				Name: aws.String(record.Name),
				Type: r53types.RRType(record.Type),
				TTL:  aws.Int64(300),
				ResourceRecords: []r53types.ResourceRecord{
					{Value: aws.String(value)},
				},
			},
		})
	}

	out, err := c.r53.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(spec.HostedZoneID),
		ChangeBatch: &r53types.ChangeBatch{
			Comment: aws.String("mailstead record set for " + spec.DomainName),
			Changes: changes,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upsert records in zone %s: %w", spec.HostedZoneID, err)
	}
	return aws.ToString(out.ChangeInfo.Id), nil
}

// tagSpec builds an EC2 tag specification from a resource's tag map
// plus the Name tag EC2 consoles key on.
func tagSpec(rt ec2types.ResourceType, name string, tags map[string]string) ec2types.TagSpecification {
	ec2Tags := make([]ec2types.Tag, 0, len(tags)+1)
	ec2Tags = append(ec2Tags, ec2types.Tag{Key: aws.String("Name"), Value: aws.String(name)})
	for k, v := range tags {
		ec2Tags = append(ec2Tags, ec2types.Tag{Key: aws.String(k), Value: aws.String(v)})
	}
	return ec2types.TagSpecification{ResourceType: rt, Tags: ec2Tags}
}

func nameTagFilter(name string) ec2types.Filter {
	return ec2types.Filter{Name: aws.String("tag:Name"), Values: []string{name}}
}
