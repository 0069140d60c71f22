package cluster

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Canonical machine config names referenced by generated descriptors. The
// names have to match the machine configs present in the GitOps repository.
const (
	ConfigWorkersChrony    = "workers-chrony-configuration"
	ConfigKubelet          = "worker-kubeletconfig"
	ConfigKubeletHighPods  = "worker-kubeletconfig-500"
	ConfigVarLibContainers = "98-var-lib-containers"
	ConfigRingsize         = "ringsize"
)

// Supported maximum pods per node. High density requires the
// var-lib-containers machine config.
const (
	MaxPodsStandard    = 250
	MaxPodsHighDensity = 500
)

// Vendor is a supported hardware vendor.
type Vendor struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// Catalog enumerates the vendors, OCP versions and defaults a generator
// instance supports. It is immutable after construction and injected into the
// services so tests can run against a minimal fixture set.
type Catalog struct {
	vendors          []Vendor
	versions         []string
	defaultVersion   string
	defaultDNSDomain string
}

func NewCatalog(vendors []Vendor, versions []string, defaultVersion, defaultDNSDomain string) (Catalog, error) {
	if len(vendors) == 0 {
		return Catalog{}, fmt.Errorf("catalog requires at least one vendor")
	}
	if !slices.Contains(versions, defaultVersion) {
		return Catalog{}, fmt.Errorf("default version %q is not in the supported versions %v", defaultVersion, versions)
	}

	return Catalog{
		vendors:          slices.Clone(vendors),
		versions:         slices.Clone(versions),
		defaultVersion:   defaultVersion,
		defaultDNSDomain: defaultDNSDomain,
	}, nil
}

// DefaultCatalog returns the production set of vendors and versions.
func DefaultCatalog() Catalog {
	catalog, err := NewCatalog(
		[]Vendor{
			{Name: "cisco", DisplayName: "Cisco UCS"},
			{Name: "dell", DisplayName: "Dell PowerEdge"},
			{Name: "dell-data", DisplayName: "Dell Data Services"},
			{Name: "h100-gpu", DisplayName: "NVIDIA H100 GPU"},
			{Name: "h200-gpu", DisplayName: "NVIDIA H200 GPU"},
		},
		[]string{"4.15", "4.16"},
		"4.16",
		"example.company.com",
	)
	if err != nil {
		// the production set is validated by TestDefaultCatalog
		panic(err)
	}
	return catalog
}

func (c Catalog) Vendors() []Vendor {
	return slices.Clone(c.vendors)
}

func (c Catalog) HasVendor(name string) bool {
	return slices.ContainsFunc(c.vendors, func(v Vendor) bool {
		return v.Name == name
	})
}

func (c Catalog) Versions() []string {
	return slices.Clone(c.versions)
}

func (c Catalog) HasVersion(version string) bool {
	return slices.Contains(c.versions, version)
}

func (c Catalog) DefaultVersion() string {
	return c.defaultVersion
}

func (c Catalog) DefaultDNSDomain() string {
	return c.defaultDNSDomain
}

// NMConfigName returns the name of the NetworkManager machine config for a
// cluster/vendor pair. The name is a pure function of the two so node pools
// sharing a vendor reference the same config.
func NMConfigName(clusterName, vendor string) string {
	return fmt.Sprintf("nm-conf-%s-%s", clusterName, vendor)
}

// KubeletConfigName returns the kubelet machine config matching the max pods
// setting. Exactly one of the two variants ends up in every config list.
func KubeletConfigName(maxPods int) string {
	if maxPods == MaxPodsHighDensity {
		return ConfigKubeletHighPods
	}
	return ConfigKubelet
}
