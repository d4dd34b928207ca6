package main

import (
	"sort"

	"github.com/gqlkit/gqlcodegen/internal/ir"
)

// Report is the stable JSON projection of a CompilationResult the CLI
// emits for downstream tooling.
type Report struct {
	Schema          SchemaReport        `json:"schema"`
	Operations      []OperationReport   `json:"operations"`
	Fragments       []FragmentReport    `json:"fragments"`
	ReferencedTypes []string            `json:"referencedTypes"`
	Implementors    map[string][]string `json:"implementors,omitempty"`
}

type SchemaReport struct {
	QueryType        string `json:"queryType"`
	MutationType     string `json:"mutationType,omitempty"`
	SubscriptionType string `json:"subscriptionType,omitempty"`
	Description      string `json:"description,omitempty"`
}

type OperationReport struct {
	Name                 string   `json:"name"`
	Type                 string   `json:"type"`
	RootType             string   `json:"rootType"`
	FilePath             string   `json:"filePath,omitempty"`
	Variables            []string `json:"variables,omitempty"`
	ReferencedFragments  []string `json:"referencedFragments,omitempty"`
	IsLocalCacheMutation bool     `json:"isLocalCacheMutation,omitempty"`
	Source               string   `json:"source"`
}

type FragmentReport struct {
	Name                 string   `json:"name"`
	TypeCondition        string   `json:"typeCondition"`
	FilePath             string   `json:"filePath,omitempty"`
	ReferencedFragments  []string `json:"referencedFragments,omitempty"`
	IsLocalCacheMutation bool     `json:"isLocalCacheMutation,omitempty"`
	Source               string   `json:"source"`
}

func buildReport(result *ir.CompilationResult) *Report {
	report := &Report{
		Schema: SchemaReport{
			QueryType:        result.Schema.QueryTypeName,
			MutationType:     result.Schema.MutationTypeName,
			SubscriptionType: result.Schema.SubscriptionTypeName,
			Description:      result.Schema.Description,
		},
	}

	for _, op := range result.Operations {
		r := OperationReport{
			Name:                 op.Name,
			Type:                 string(op.OperationType),
			RootType:             op.RootType.Name,
			FilePath:             op.FilePath,
			ReferencedFragments:  fragmentNames(op.ReferencedFragments),
			IsLocalCacheMutation: op.IsLocalCacheMutation,
			Source:               op.Source,
		}
		for _, v := range op.Variables {
			r.Variables = append(r.Variables, v.Name)
		}
		report.Operations = append(report.Operations, r)
	}

	for _, frag := range result.Fragments {
		report.Fragments = append(report.Fragments, FragmentReport{
			Name:                 frag.Name,
			TypeCondition:        frag.TypeCondition.Name,
			FilePath:             frag.FilePath,
			ReferencedFragments:  fragmentNames(frag.ReferencedFragments),
			IsLocalCacheMutation: frag.IsLocalCacheMutation,
			Source:               frag.Source,
		})
	}

	for _, t := range result.ReferencedTypes.Types() {
		report.ReferencedTypes = append(report.ReferencedTypes, t.Name)
		if impls := result.ReferencedTypes.Implementors(t.Name); len(impls) > 0 {
			if report.Implementors == nil {
				report.Implementors = make(map[string][]string)
			}
			names := make([]string, 0, len(impls))
			for _, impl := range impls {
				names = append(names, impl.Name)
			}
			sort.Strings(names)
			report.Implementors[t.Name] = names
		}
	}
	return report
}

func fragmentNames(frags []*ir.FragmentDefinition) []string {
	names := make([]string, 0, len(frags))
	for _, frag := range frags {
		names = append(names, frag.Name)
	}
	return names
}
