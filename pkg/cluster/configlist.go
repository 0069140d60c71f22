package cluster

import "strings"

// poolInput is the per-pool slice of a generation request the config list
// builder works on. The flags are cluster-wide in the API but kept per pool so
// the builder stays a pure function of its arguments.
type poolInput struct {
	Vendor                  string
	MaxPods                 int
	IncludeVarLibContainers bool
	IncludeRingsize         bool
}

// listBuilder computes the ordered, deduplicated machine config lists for
// node pools and for the cluster-wide mcFiles aggregate.
type listBuilder struct {
	catalog Catalog
}

func newListBuilder(catalog Catalog) listBuilder {
	return listBuilder{catalog: catalog}
}

// nodePoolConfigs returns the config list for a single node pool. The
// composition order is fixed: the vendor NetworkManager config, the chrony
// baseline, exactly one kubelet variant, the optional configs, then any extra
// names. Entries are deduplicated keeping the first occurrence.
func (b listBuilder) nodePoolConfigs(clusterName string, pool poolInput, extraConfigs []string) ([]string, error) {
	if !b.catalog.HasVendor(pool.Vendor) {
		return nil, NewUnknownVendor(pool.Vendor)
	}

	var configs []string
	configs = appendUnique(configs, NMConfigName(clusterName, pool.Vendor))
	configs = appendUnique(configs, ConfigWorkersChrony)
	configs = appendUnique(configs, KubeletConfigName(pool.MaxPods))

	// high pod density forces the var-lib-containers config even if the
	// request did not ask for it
	if pool.IncludeVarLibContainers || pool.MaxPods == MaxPodsHighDensity {
		configs = appendUnique(configs, ConfigVarLibContainers)
	}
	if pool.IncludeRingsize {
		configs = appendUnique(configs, ConfigRingsize)
	}

	return appendExtraConfigs(configs, extraConfigs), nil
}

// mcFiles returns the cluster-wide aggregate over all node pools: one vendor
// NetworkManager config per distinct vendor in first-seen order, every shared
// config exactly once, then the cluster-scoped extra configs. Pools sharing a
// vendor collapse to a single vendor entry since the vendor config name does
// not depend on the pool.
func (b listBuilder) mcFiles(clusterName string, pools []poolInput, extraConfigs []string) ([]string, error) {
	if len(pools) == 0 {
		return nil, NewEmptyNodePools()
	}

	var files []string
	for _, pool := range pools {
		configs, err := b.nodePoolConfigs(clusterName, pool, nil)
		if err != nil {
			return nil, err
		}
		for _, config := range configs {
			files = appendUnique(files, config)
		}
	}

	return appendExtraConfigs(files, extraConfigs), nil
}

// appendUnique appends value unless it is already present (stable dedup).
func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}

func appendExtraConfigs(list []string, extraConfigs []string) []string {
	for _, config := range extraConfigs {
		config = strings.TrimSpace(config)
		if config == "" {
			continue
		}
		list = appendUnique(list, config)
	}
	return list
}
