package cluster

import (
	"context"
	"fmt"

	"github.com/mce-sre/cluster-generator/pkg/model"
)

// NodePoolRequest is one vendor node pool of a generation request.
type NodePoolRequest struct {
	Vendor        string
	NumberOfNodes int
	InfraEnvName  string
}

// GenerationInput is a validated, normalized generation request. The input
// validation layer guarantees the density invariant before the input reaches
// the assembler: IncludeVarLibContainers is already true whenever MaxPods is
// the high density variant.
type GenerationInput struct {
	ClusterName             string
	Site                    string
	DNSDomain               string
	OCPVersion              string
	MaxPods                 int
	IncludeVarLibContainers bool
	IncludeRingsize         bool
	CustomConfigs           []string
	NodePools               []NodePoolRequest
}

type mirrorLookup interface {
	Lookup(version string) ([]model.ImageContentSource, error)
}

func NewService(catalog Catalog, mirrors mirrorLookup, clusterRepository *repository) Service {
	return Service{
		catalog:           catalog,
		builder:           newListBuilder(catalog),
		mirrors:           mirrors,
		clusterRepository: clusterRepository,
	}
}

type Service struct {
	catalog           Catalog
	builder           listBuilder
	mirrors           mirrorLookup
	clusterRepository *repository
}

// Assemble expands input into a complete cluster descriptor. It is a pure
// function: no state survives between calls and identical input yields an
// identical descriptor. Any error aborts the whole assembly, no partial
// descriptor is ever returned.
func (s Service) Assemble(input GenerationInput) (model.ClusterDescriptor, error) {
	if len(input.NodePools) == 0 {
		return model.ClusterDescriptor{}, NewEmptyNodePools()
	}

	pools := make([]poolInput, 0, len(input.NodePools))
	for _, request := range input.NodePools {
		pools = append(pools, poolInput{
			Vendor:                  request.Vendor,
			MaxPods:                 input.MaxPods,
			IncludeVarLibContainers: input.IncludeVarLibContainers,
			IncludeRingsize:         input.IncludeRingsize,
		})
	}

	nodePools := make([]model.NodePool, 0, len(input.NodePools))
	for i, request := range input.NodePools {
		configs, err := s.builder.nodePoolConfigs(input.ClusterName, pools[i], nil)
		if err != nil {
			return model.ClusterDescriptor{}, err
		}

		items := make([]model.ConfigItem, 0, len(configs))
		for _, config := range configs {
			items = append(items, model.ConfigItem{Name: config})
		}

		minReplicas := request.NumberOfNodes - 1
		if minReplicas < 1 {
			minReplicas = 1
		}
		nodePools = append(nodePools, model.NodePool{
			Name:     fmt.Sprintf("%s-%s-nodepool", input.ClusterName, request.Vendor),
			Replicas: request.NumberOfNodes,
			Labels: model.NodePoolLabels{
				AllowDeletion: false,
				MinReplicas:   fmt.Sprintf("%d", minReplicas),
				MaxReplicas:   fmt.Sprintf("%d", request.NumberOfNodes),
			},
			AgentLabelSelector: model.AgentLabelSelector{
				NodeLabelKey:   "infraenv",
				NodeLabelValue: request.InfraEnvName,
			},
			Config: items,
		})
	}

	mcFiles, err := s.builder.mcFiles(input.ClusterName, pools, input.CustomConfigs)
	if err != nil {
		return model.ClusterDescriptor{}, err
	}

	sources, err := s.mirrors.Lookup(input.OCPVersion)
	if err != nil {
		return model.ClusterDescriptor{}, err
	}

	zone := input.DNSDomain
	if zone == "" {
		zone = s.catalog.DefaultDNSDomain()
	}

	return model.ClusterDescriptor{
		ClusterName:         input.ClusterName,
		Platform:            "agent",
		HostInventory:       "inventory",
		NodePools:           nodePools,
		MCFiles:             mcFiles,
		DNS:                 model.DNSConfig{Site: input.Site, Zone: zone},
		ImageContentSources: sources,
	}, nil
}

// Generate assembles input, renders the descriptor to YAML and persists the
// generation record.
func (s Service) Generate(ctx context.Context, input GenerationInput) (model.Cluster, error) {
	descriptor, err := s.Assemble(input)
	if err != nil {
		return model.Cluster{}, err
	}

	configuration, err := Serialize(descriptor)
	if err != nil {
		return model.Cluster{}, err
	}

	record := model.Cluster{
		Name:          input.ClusterName,
		Site:          input.Site,
		OCPVersion:    input.OCPVersion,
		Path:          DescriptorPath(input.Site, input.ClusterName),
		Configuration: configuration,
	}
	err = s.clusterRepository.save(ctx, &record)
	if err != nil {
		return model.Cluster{}, err
	}

	return record, nil
}

func (s Service) Find(ctx context.Context, id uint) (model.Cluster, error) {
	return s.clusterRepository.find(ctx, id)
}

func (s Service) FindAll(ctx context.Context) ([]model.Cluster, error) {
	return s.clusterRepository.findAll(ctx)
}

func (s Service) Delete(ctx context.Context, id uint) error {
	cluster, err := s.clusterRepository.find(ctx, id)
	if err != nil {
		return err
	}

	return s.clusterRepository.delete(ctx, cluster)
}
