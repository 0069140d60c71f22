package cluster

import (
	"bytes"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/mce-sre/cluster-generator/pkg/model"
	"gopkg.in/yaml.v3"
)

// Serialize renders a descriptor to YAML. Key order follows the field order
// of the model types, 2-space indent, no flow style, so the output is stable
// across runs and diffs cleanly in a GitOps repository.
func Serialize(descriptor model.ClusterDescriptor) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(descriptor); err != nil {
		return nil, fmt.Errorf("failed to render cluster descriptor: %v", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to render cluster descriptor: %v", err)
	}
	return buf.Bytes(), nil
}

// DescriptorPath returns the path the descriptor would have within a GitOps
// repository layout. The site is slugified as sites are free-form labels.
func DescriptorPath(site, clusterName string) string {
	return fmt.Sprintf("clusters/%s/%s.yaml", slug.Make(site), clusterName)
}
