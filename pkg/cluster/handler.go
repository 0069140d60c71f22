package cluster

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mce-sre/cluster-generator/internal/errdef"
	"github.com/mce-sre/cluster-generator/internal/handler"
	"github.com/mce-sre/cluster-generator/pkg/model"
)

func NewHandler(catalog Catalog, clusterService generationService) Handler {
	return Handler{
		catalog,
		clusterService,
	}
}

type generationService interface {
	Assemble(input GenerationInput) (model.ClusterDescriptor, error)
	Generate(ctx context.Context, input GenerationInput) (model.Cluster, error)
	Find(ctx context.Context, id uint) (model.Cluster, error)
	FindAll(ctx context.Context) ([]model.Cluster, error)
	Delete(ctx context.Context, id uint) error
}

type Handler struct {
	catalog        Catalog
	clusterService generationService
}

type NodePoolRequestBody struct {
	Vendor        string `json:"vendor" binding:"required"`
	NumberOfNodes int    `json:"numberOfNodes" binding:"required,min=1,max=100"`
	InfraEnvName  string `json:"infraEnvName" binding:"required"`
}

type GenerateClusterRequest struct {
	ClusterName             string                `json:"clusterName" binding:"required,dns1123label"`
	Site                    string                `json:"site" binding:"required"`
	NodePools               []NodePoolRequestBody `json:"nodePools" binding:"required,min=1,dive"`
	OCPVersion              string                `json:"ocpVersion"`
	DNSDomain               string                `json:"dnsDomain"`
	MaxPods                 int                   `json:"maxPods" binding:"omitempty,oneof=250 500"`
	IncludeVarLibContainers bool                  `json:"includeVarLibContainers"`
	IncludeRingsize         bool                  `json:"includeRingsize"`
	CustomConfigs           []string              `json:"customConfigs"`
}

// toGenerationInput normalizes a request into the input the assembler
// expects: defaults are filled in from the catalog and the high density
// setting forces the var-lib-containers config so the assembler never sees an
// inconsistent flag combination.
func (r GenerateClusterRequest) toGenerationInput(catalog Catalog) GenerationInput {
	version := r.OCPVersion
	if version == "" {
		version = catalog.DefaultVersion()
	}
	dnsDomain := r.DNSDomain
	if dnsDomain == "" {
		dnsDomain = catalog.DefaultDNSDomain()
	}
	maxPods := r.MaxPods
	if maxPods == 0 {
		maxPods = MaxPodsStandard
	}

	nodePools := make([]NodePoolRequest, 0, len(r.NodePools))
	for _, pool := range r.NodePools {
		nodePools = append(nodePools, NodePoolRequest{
			Vendor:        pool.Vendor,
			NumberOfNodes: pool.NumberOfNodes,
			InfraEnvName:  pool.InfraEnvName,
		})
	}

	return GenerationInput{
		ClusterName:             r.ClusterName,
		Site:                    r.Site,
		DNSDomain:               dnsDomain,
		OCPVersion:              version,
		MaxPods:                 maxPods,
		IncludeVarLibContainers: r.IncludeVarLibContainers || maxPods == MaxPodsHighDensity,
		IncludeRingsize:         r.IncludeRingsize,
		CustomConfigs:           r.CustomConfigs,
		NodePools:               nodePools,
	}
}

// translateError maps generation contract errors to bad requests. Anything
// else stays as is and ends up as an internal server error.
func translateError(err error) error {
	if IsUnknownVendor(err) || IsUnknownVersion(err) || IsEmptyNodePools(err) {
		return errdef.NewBadRequest("%v", err)
	}
	return err
}

type GenerateClusterResponse struct {
	ID            uint     `json:"id"`
	ClusterName   string   `json:"clusterName"`
	Site          string   `json:"site"`
	OCPVersion    string   `json:"ocpVersion"`
	Path          string   `json:"path"`
	NodePoolCount int      `json:"nodePoolCount"`
	VendorsUsed   []string `json:"vendorsUsed"`
	YAMLContent   string   `json:"yamlContent"`
}

// Generate cluster descriptor
func (h Handler) Generate(c *gin.Context) {
	// swagger:route POST /clusters generateCluster
	//
	// Generate cluster descriptor
	//
	// Generate a cluster descriptor and persist the generation record
	//
	// Responses:
	//   201: GenerateClusterResponse
	//   400: Error
	//   409: Error
	//   415: Error
	var request GenerateClusterRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	input := request.toGenerationInput(h.catalog)
	record, err := h.clusterService.Generate(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(translateError(err))
		return
	}

	c.JSON(http.StatusCreated, GenerateClusterResponse{
		ID:            record.ID,
		ClusterName:   record.Name,
		Site:          record.Site,
		OCPVersion:    record.OCPVersion,
		Path:          record.Path,
		NodePoolCount: len(input.NodePools),
		VendorsUsed:   vendorsUsed(input),
		YAMLContent:   string(record.Configuration),
	})
}

type PreviewClusterResponse struct {
	ClusterName   string   `json:"clusterName"`
	OCPVersion    string   `json:"ocpVersion"`
	NodePoolCount int      `json:"nodePoolCount"`
	VendorsUsed   []string `json:"vendorsUsed"`
	YAMLContent   string   `json:"yamlContent"`
}

// Preview cluster descriptor
func (h Handler) Preview(c *gin.Context) {
	// swagger:route POST /clusters/preview previewCluster
	//
	// Preview cluster descriptor
	//
	// Generate a cluster descriptor without persisting anything
	//
	// Responses:
	//   200: PreviewClusterResponse
	//   400: Error
	//   415: Error
	var request GenerateClusterRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	input := request.toGenerationInput(h.catalog)
	descriptor, err := h.clusterService.Assemble(input)
	if err != nil {
		_ = c.Error(translateError(err))
		return
	}

	configuration, err := Serialize(descriptor)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, PreviewClusterResponse{
		ClusterName:   descriptor.ClusterName,
		OCPVersion:    input.OCPVersion,
		NodePoolCount: len(descriptor.NodePools),
		VendorsUsed:   vendorsUsed(input),
		YAMLContent:   string(configuration),
	})
}

// vendorsUsed returns the distinct vendors of the request in first-seen order.
func vendorsUsed(input GenerationInput) []string {
	var vendors []string
	for _, pool := range input.NodePools {
		vendors = appendUnique(vendors, pool.Vendor)
	}
	return vendors
}

// FindAll clusters
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /clusters listClusters
	//
	// Find all clusters
	//
	// Find all generated cluster records
	//
	// Responses:
	//   200: ClustersResponse
	clusters, err := h.clusterService.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, clusters)
}

// Find cluster
func (h Handler) Find(c *gin.Context) {
	// swagger:route GET /clusters/{id} findClusterById
	//
	// Find cluster
	//
	// Find a generated cluster record by id
	//
	// Responses:
	//   200: ClusterResponse
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	cluster, err := h.clusterService.Find(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cluster)
}

// Descriptor of a cluster
func (h Handler) Descriptor(c *gin.Context) {
	// swagger:route GET /clusters/{id}/descriptor clusterDescriptor
	//
	// Cluster descriptor
	//
	// Download the rendered descriptor YAML of a generated cluster
	//
	// Responses:
	//   200: DescriptorResponse
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	cluster, err := h.clusterService.Find(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Data(http.StatusOK, "application/yaml", cluster.Configuration)
}

// Delete cluster
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /clusters/{id} deleteCluster
	//
	// Delete cluster
	//
	// Delete a generated cluster record
	//
	// Responses:
	//   204:
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	err := h.clusterService.Delete(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

type VersionInfo struct {
	Version   string `json:"version"`
	IsDefault bool   `json:"isDefault"`
}

type ConfigInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DefaultsResponse struct {
	Vendors          []Vendor      `json:"vendors"`
	Versions         []VersionInfo `json:"versions"`
	DefaultConfigs   []string      `json:"defaultConfigs"`
	OptionalConfigs  []ConfigInfo  `json:"optionalConfigs"`
	DefaultDNSDomain string        `json:"defaultDnsDomain"`
}

// Defaults for cluster generation
func (h Handler) Defaults(c *gin.Context) {
	// swagger:route GET /defaults clusterDefaults
	//
	// Generation defaults
	//
	// Vendors, versions and configs available for cluster generation
	//
	// Responses:
	//   200: DefaultsResponse
	versions := make([]VersionInfo, 0, len(h.catalog.Versions()))
	for _, version := range h.catalog.Versions() {
		versions = append(versions, VersionInfo{
			Version:   version,
			IsDefault: version == h.catalog.DefaultVersion(),
		})
	}

	c.JSON(http.StatusOK, DefaultsResponse{
		Vendors:  h.catalog.Vendors(),
		Versions: versions,
		DefaultConfigs: []string{
			ConfigWorkersChrony,
			KubeletConfigName(MaxPodsStandard),
		},
		OptionalConfigs: []ConfigInfo{
			{
				Key:         "varLibContainers",
				Name:        ConfigVarLibContainers,
				Description: "Configure /var/lib/containers storage (required for 500 pods)",
			},
			{
				Key:         "ringsize",
				Name:        ConfigRingsize,
				Description: "Network ring buffer size configuration",
			},
		},
		DefaultDNSDomain: h.catalog.DefaultDNSDomain(),
	})
}

// Vendors supported by the generator
func (h Handler) Vendors(c *gin.Context) {
	// swagger:route GET /vendors listVendors
	//
	// List vendors
	//
	// List the supported hardware vendors
	//
	// Responses:
	//   200: VendorsResponse
	c.JSON(http.StatusOK, h.catalog.Vendors())
}

// Versions supported by the generator
func (h Handler) Versions(c *gin.Context) {
	// swagger:route GET /versions listVersions
	//
	// List versions
	//
	// List the supported OCP versions
	//
	// Responses:
	//   200: VersionsResponse
	c.JSON(http.StatusOK, h.catalog.Versions())
}
