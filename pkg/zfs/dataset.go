// SPDX-License-Identifier: Apache-2.0
package zfs

// Property is a single zfs dataset property assignment.
type Property struct {
	Key   string
	Value string
}

// Dataset is one planned dataset relative to the pool root.
type Dataset struct {
	Name       string
	Properties []Property
}

// DefaultLayout returns the boot-environment dataset hierarchy used with
// ZFSBootMenu: an unmounted ROOT container, a default boot environment at
// /, and split-out system trees so snapshots of the root stay small.
func DefaultLayout() []Dataset {
	return []Dataset{
		{"ROOT", props("canmount", "off", "mountpoint", "none")},
		{"ROOT/default", props("canmount", "noauto", "mountpoint", "/")},
		{"home", props("mountpoint", "/home")},
		{"home/root", props("mountpoint", "/root")},
		{"var", props("canmount", "off", "mountpoint", "none")},
		{"var/log", props("mountpoint", "/var/log", "acltype", "posixacl", "xattr", "sa")},
		{"var/cache", props("mountpoint", "/var/cache", "com.sun:auto-snapshot", "false")},
		{"var/tmp", props("mountpoint", "/var/tmp", "com.sun:auto-snapshot", "false")},
		{"opt", props("mountpoint", "/opt")},
		{"srv", props("mountpoint", "/srv")},
		{"usr", props("canmount", "off", "mountpoint", "none")},
		{"usr/local", props("mountpoint", "/usr/local")},
	}
}

// DatasetCreateArgs returns the zfs invocation creating d under pool.
func DatasetCreateArgs(pool string, d Dataset) []string {
	args := []string{"zfs", "create"}
	for _, p := range d.Properties {
		args = append(args, "-o", p.Key+"="+p.Value)
	}
	args = append(args, pool+"/"+d.Name)
	return args
}

func props(kv ...string) []Property {
	out := make([]Property, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, Property{Key: kv[i], Value: kv[i+1]})
	}
	return out
}
