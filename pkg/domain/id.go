package domain

import "github.com/google/uuid"

// Ids marshal to their canonical textual form in JSON, YAML and river args.

func (id AccountID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *AccountID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id ProjectID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *ProjectID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id JobID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *JobID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id CrawlJobID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *CrawlJobID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id PageID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *PageID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
