package repository

import (
	"context"

	"claims_service/internal/domain/entities"
	"claims_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBeneficiariesTableName = "beneficiaries"
	defaultProvidersTableName     = "providers"
	defaultPriceCatalogTableName  = "price_catalog"
)

type beneficiaryItem struct {
	Ref      string `dynamodbav:"ref"`
	FullName string `dynamodbav:"full_name"`
	PolicyNo string `dynamodbav:"policy_no,omitempty"`
	Active   bool   `dynamodbav:"active"`
}

type providerItem struct {
	Ref  string `dynamodbav:"ref"`
	Name string `dynamodbav:"name"`
	Kind string `dynamodbav:"kind,omitempty"`
}

type catalogItem struct {
	Code         string `dynamodbav:"code"`
	Label        string `dynamodbav:"label"`
	UnitPrice    int64  `dynamodbav:"unit_price"`
	Reimbursable bool   `dynamodbav:"reimbursable"`
}

// DirectoryDynamoRepository reads master data owned by other systems. It never writes.
//
// Tables:
//   - beneficiaries (PK: ref)
//   - providers (PK: ref)
//   - price_catalog (PK: code)

type DirectoryDynamoRepository struct {
	ddb           DynamoDBAPI
	beneficiaries string
	providers     string
	catalog       string
}

// DirectoryTables names the master-data tables; empty names fall back to defaults.
type DirectoryTables struct {
	Beneficiaries string
	Providers     string
	PriceCatalog  string
}

func NewDirectoryDynamoRepository(ddb DynamoDBAPI, tables DirectoryTables) *DirectoryDynamoRepository {
	return &DirectoryDynamoRepository{
		ddb:           ddb,
		beneficiaries: tableOrDefault(tables.Beneficiaries, defaultBeneficiariesTableName),
		providers:     tableOrDefault(tables.Providers, defaultProvidersTableName),
		catalog:       tableOrDefault(tables.PriceCatalog, defaultPriceCatalogTableName),
	}
}

// Beneficiaries, Providers and Catalog expose the repository through the narrow
// lookup interfaces the registry consumes.
func (r *DirectoryDynamoRepository) Beneficiaries() interfaces.IBeneficiaryDirectory {
	return beneficiaryLookup{r}
}

func (r *DirectoryDynamoRepository) Providers() interfaces.IProviderDirectory {
	return providerLookup{r}
}

func (r *DirectoryDynamoRepository) Catalog() interfaces.IPriceCatalog {
	return r
}

type beneficiaryLookup struct{ r *DirectoryDynamoRepository }

func (l beneficiaryLookup) Resolve(ctx context.Context, ref string) (entities.BeneficiaryInfo, error) {
	var it beneficiaryItem
	found, err := l.r.get(ctx, l.r.beneficiaries, "ref", ref, &it)
	if err != nil {
		return entities.BeneficiaryInfo{}, err
	}
	if !found {
		return entities.BeneficiaryInfo{}, entities.ErrBeneficiaryNotFound
	}
	return entities.BeneficiaryInfo{Ref: it.Ref, FullName: it.FullName, PolicyNo: it.PolicyNo, Active: it.Active}, nil
}

type providerLookup struct{ r *DirectoryDynamoRepository }

func (l providerLookup) Resolve(ctx context.Context, ref string) (entities.ProviderInfo, error) {
	var it providerItem
	found, err := l.r.get(ctx, l.r.providers, "ref", ref, &it)
	if err != nil {
		return entities.ProviderInfo{}, err
	}
	if !found {
		return entities.ProviderInfo{}, entities.ErrProviderNotFound
	}
	return entities.ProviderInfo{Ref: it.Ref, Name: it.Name, Kind: it.Kind}, nil
}

func (r *DirectoryDynamoRepository) PriceOf(ctx context.Context, code string) (entities.CatalogEntry, error) {
	var it catalogItem
	found, err := r.get(ctx, r.catalog, "code", code, &it)
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	if !found {
		return entities.CatalogEntry{}, entities.ErrCatalogEntryNotFound
	}
	return entities.CatalogEntry{
		Code:         it.Code,
		Label:        it.Label,
		UnitPrice:    entities.Money(it.UnitPrice),
		Reimbursable: it.Reimbursable,
	}, nil
}

func (r *DirectoryDynamoRepository) get(ctx context.Context, table, key, value string, out any) (bool, error) {
	res, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			key: &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}
