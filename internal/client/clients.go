package client

// Clients bundles the external dictionary and translation APIs.
type Clients struct {
	*FTAPIClient
	*MyMemoryClient
}

func InitClients() Clients {
	return Clients{
		FTAPIClient:    NewFTAPIClient(),
		MyMemoryClient: NewMyMemoryClient(),
	}
}
