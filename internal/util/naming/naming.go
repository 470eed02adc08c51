// Package naming provides deterministic naming for mailstead cloud
// resources.
//
// Infrastructure names follow the pattern mailstead-{env}-{kind}.
// The bucket name additionally carries the account id because S3
// names are global; two accounts deploying the same environment must
// not collide.
package naming

import "fmt"

const prefix = "mailstead"

func VPC(env string) string {
	return fmt.Sprintf("%s-%s-vpc", prefix, env)
}

func Subnet(env string) string {
	return fmt.Sprintf("%s-%s-public", prefix, env)
}

func Instance(env string) string {
	return fmt.Sprintf("%s-%s-server", prefix, env)
}

func SecurityGroup(env string) string {
	return fmt.Sprintf("%s-%s-sg", prefix, env)
}

// Bucket returns the object-storage container name. The account id is
// omitted from the name when unknown; the validator's placeholder and
// the backend's account discovery cover that case before anything is
// created.
func Bucket(env, accountID string) string {
	if accountID == "" {
		return fmt.Sprintf("%s-%s-mail", prefix, env)
	}
	return fmt.Sprintf("%s-%s-mail-%s", prefix, env, accountID)
}

func Secret(env string) string {
	return fmt.Sprintf("%s/%s/credentials", prefix, env)
}

func Alarm(env, alarm string) string {
	return fmt.Sprintf("%s-%s-%s", prefix, env, alarm)
}

func BackupPlan(env string) string {
	return fmt.Sprintf("%s-%s-backup", prefix, env)
}

func RecordSet(env string) string {
	return fmt.Sprintf("%s-%s-dns", prefix, env)
}

func LogGroup(env string) string {
	return fmt.Sprintf("/%s/%s/mail", prefix, env)
}
