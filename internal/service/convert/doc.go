// Package convert produces stream-optimized copies of the raw virtual disks
// named in the build manifest. The production implementation shells out to
// vmware-vdiskmanager; the Converter interface lets tests substitute a fake.
package convert
