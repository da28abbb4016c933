package royalty

import (
	"encoding/json"

	"github.com/gagliardetto/solana-go"
)

// Mint is the address of a non-fungible token
type Mint string

func (m Mint) String() string {
	return string(m)
}

func (m Mint) PublicKey() (solana.PublicKey, error) {
	return solana.PublicKeyFromBase58(string(m))
}

func ToMints(addrs []string) []Mint {
	res := make([]Mint, len(addrs))
	for i, a := range addrs {
		res[i] = Mint(a)
	}
	return res
}

type Collection struct {
	Id          int64  `json:"id"`
	CreatedAt   int64  `json:"createdAt"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// lamports
	MintPrice uint64  `json:"mintPrice"`
	MintDate  int64   `json:"mintDate"`
	Items     int64   `json:"items"`
	LogoUrl   *string `json:"logoUrl,omitempty"`
	Website   *string `json:"website,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	Discord   *string `json:"discord,omitempty"`
	// use https://magiceden.io/marketplace/SYMBOL to reach the collection
	SymbolME *string `json:"symbolME,omitempty"`
	// lamports
	FloorPrice       *uint64 `json:"floorPrice,omitempty"`
	ListedItems      *int64  `json:"listedItems,omitempty"`
	Owners           *int64  `json:"owners,omitempty"`
	LastOwnersUpdate *int64  `json:"lastOwnersUpdate,omitempty"`
}

type MintCreator struct {
	Address  string `json:"address"`
	Verified int    `json:"verified"`
	Share    int    `json:"share"`
}

type MintMetadata struct {
	Name         string        `json:"name"`
	Image        string        `json:"image"`
	Thumbnail    *string       `json:"thumbnail,omitempty"`
	Creators     []MintCreator `json:"creators"`
	Royalties    uint16        `json:"royalties"`
	Rank         int64         `json:"rank"`
	IsListed     bool          `json:"isListed"`
	LastActivity *int64        `json:"lastActivity,omitempty"`
}

// MintSale is the last recorded sale of a mint
type MintSale struct {
	Transaction string `json:"transaction"`
	Timestamp   int64  `json:"timestamp"`
	// lamports
	Price uint64 `json:"price"`
	// basis points owed on Price
	Royalties uint16 `json:"royalties"`
	// set once a payment went through the service
	Proof     *string `json:"proof,omitempty"`
	ProofTime *int64  `json:"proofTime,omitempty"`
}

type RoyaltyStatus string

const (
	RoyaltyStatusUnknown     RoyaltyStatus = "Unknown"
	RoyaltyStatusNotPaid     RoyaltyStatus = "NotPaid"
	RoyaltyStatusPaidPartial RoyaltyStatus = "PaidPartial"
	RoyaltyStatusPaidFull    RoyaltyStatus = "PaidFull"
	RoyaltyStatusExempted    RoyaltyStatus = "Exempted"
)

// UnmarshalJSON maps literals it does not know to Unknown
func (s *RoyaltyStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch st := RoyaltyStatus(raw); st {
	case RoyaltyStatusNotPaid, RoyaltyStatusPaidPartial, RoyaltyStatusPaidFull, RoyaltyStatusExempted:
		*s = st
	default:
		*s = RoyaltyStatusUnknown
	}
	return nil
}

// Settled is true when nothing more can be paid
func (s RoyaltyStatus) Settled() bool {
	return s == RoyaltyStatusPaidFull || s == RoyaltyStatusExempted
}

type CheckMintResult struct {
	Mint     Mint          `json:"mint"`
	Metadata *MintMetadata `json:"metadata,omitempty"`
	Sale     *MintSale     `json:"sale,omitempty"`
	Status   RoyaltyStatus `json:"status"`
}

// Payable is true when a sale exists and its royalty is not settled
func (r CheckMintResult) Payable() bool {
	if r.Sale == nil {
		return false
	}
	return r.Status == RoyaltyStatusNotPaid || r.Status == RoyaltyStatusPaidPartial
}

// DisplayName is the metadata name, or the mint address when not indexed
func (r CheckMintResult) DisplayName() string {
	if r.Metadata == nil {
		return r.Mint.String()
	}
	return r.Metadata.Name
}

type PayProof struct {
	Transaction     string `json:"transaction"`
	TransactionTime int64  `json:"transactionTime"`
	Mint            Mint   `json:"mint"`
	SaleTransaction string `json:"saleTransaction"`
	Payer           string `json:"payer"`
	// lamports
	Paid uint64 `json:"paid"`
}
